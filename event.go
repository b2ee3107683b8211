package xterm

import "fmt"

// EventType is the tag of the Character sum type (§3, §9 "Variant
// modeling"). Each variant carries its own identity payload; see
// [Character.Rune], [Character.Name], [Character.Number] and
// [Character.MouseData].
type EventType int

const (
	// Literal is a plain printable rune with no escape or control
	// processing.
	Literal EventType = iota
	// Control is a C0 control byte resolved to a symbolic name.
	Control
	// Delta is an edit key (insert/delete/backspace) reported via an
	// escape sequence rather than a bare control byte.
	Delta
	// Navigation is an arrow/home/end/page key.
	Navigation
	// Function is F1-F12 or a named extended function key.
	Function
	// Paste is a bracketed-paste start/stop marker.
	Paste
	// Mouse is a button press or release report.
	Mouse
	// Drag is a mouse-motion-with-button-held report.
	Drag
	// Scroll is a wheel report.
	Scroll
	// Escaped is an unrecognized escape sequence, carried for audit
	// purposes rather than failing the stream (§7).
	Escaped
)

func (t EventType) String() string {
	switch t {
	case Literal:
		return "literal"
	case Control:
		return "control"
	case Delta:
		return "delta"
	case Navigation:
		return "navigation"
	case Function:
		return "function"
	case Paste:
		return "paste"
	case Mouse:
		return "mouse"
	case Drag:
		return "drag"
	case Scroll:
		return "scroll"
	case Escaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Point is an (x, y) terminal cell coordinate as carried in a mouse
// report: the SGR-1006 wire values, which are not translated to
// 0-based form.
type Point struct {
	X, Y int
}

// MouseEvent is the identity payload carried by Mouse, Drag and
// Scroll events.
//
// Action is +1 for press or scroll-up, -1 for release or
// scroll-down, and 0 for drag motion. RawMask is the low two bits of
// the SGR button field after its event-class offset is subtracted
// (0 for press/release, 32 for drag, 64 for scroll-down and 65 for
// scroll-up); §9 notes this leaks implementation detail
// rather than pure modifiers, and is kept distinct from Modifiers for
// that reason.
type MouseEvent struct {
	Point    Point
	Action   int
	RawMask  int
}

// Character is the atomic output of [Parser.Decode]: one recognized
// keypress or mouse report. It is an immutable value record; the
// zero value is not a valid Character.
type Character struct {
	typ    EventType
	source string
	mods   Modifiers
	ident  any
}

func newCharacter(t EventType, source string, mods Modifiers, ident any) Character {
	return Character{typ: t, source: source, mods: mods, ident: ident}
}

// Type returns the event's variant tag.
func (c Character) Type() EventType { return c.typ }

// Source returns the exact input substring that produced this event,
// with any leading ESC removed (§3 invariant).
func (c Character) Source() string { return c.source }

// Modifiers returns the shift/meta/control bit set attached to this
// event.
func (c Character) Modifiers() Modifiers { return c.mods }

// Rune returns the literal character for a Literal event, and the
// zero rune otherwise.
func (c Character) Rune() rune {
	if r, ok := c.ident.(rune); ok {
		return r
	}
	return 0
}

// Name returns the symbolic identity of a Control, Delta, Navigation,
// Paste or named Function event, and the raw escape body of an
// Escaped event. It returns "" for any other variant, including a
// numbered Function key — see [Character.Number].
func (c Character) Name() string {
	if s, ok := c.ident.(string); ok {
		return s
	}
	return ""
}

// Number returns the numeric identity (1-12) of a Function event
// reported by number, and 0 otherwise.
func (c Character) Number() int {
	if n, ok := c.ident.(int); ok {
		return n
	}
	return 0
}

// MouseData returns the mouse/drag/scroll payload and true, or the
// zero value and false for any other variant.
func (c Character) MouseData() (MouseEvent, bool) {
	m, ok := c.ident.(MouseEvent)
	return m, ok
}

func (c Character) String() string {
	switch c.typ {
	case Literal:
		return fmt.Sprintf("literal(%q mods=%s)", c.Rune(), c.mods)
	case Mouse, Drag, Scroll:
		m, _ := c.MouseData()
		return fmt.Sprintf("%s(%d,%d action=%d mask=%d mods=%s)", c.typ, m.Point.X, m.Point.Y, m.Action, m.RawMask, c.mods)
	case Function:
		if n := c.Number(); n != 0 {
			return fmt.Sprintf("function(%d mods=%s)", n, c.mods)
		}
		return fmt.Sprintf("function(%s mods=%s)", c.Name(), c.mods)
	default:
		return fmt.Sprintf("%s(%s mods=%s)", c.typ, c.Name(), c.mods)
	}
}
