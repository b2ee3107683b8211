package xterm

import "strconv"

// Named color slots (§4.A, supplemented from the original source's
// palette color table). Non-positive identifiers denote a palette
// slot; positive identifiers denote a 24-bit RGB literal — this dual
// encoding is fundamental to the color API and is why [Slot] and
// [TrueColor] both implement [ColorRef].
const (
	SlotTerminalDefault   = -1024
	SlotApplicationBorder = -520 // alias of background-adjacent

	SlotBackgroundLimit    = -512 // relative-black
	SlotRelativeRed        = -513
	SlotRelativeGreen      = -514
	SlotRelativeYellow     = -515
	SlotRelativeBlue       = -516
	SlotRelativeMagenta    = -517
	SlotRelativeCyan       = -518
	SlotForegroundAdjacent = -519 // relative-white

	SlotBackgroundAdjacent = -520 // absolute-black
	SlotAbsoluteRed        = -521
	SlotAbsoluteGreen      = -522
	SlotAbsoluteYellow     = -523
	SlotAbsoluteBlue       = -524
	SlotAbsoluteMagenta    = -525
	SlotAbsoluteCyan       = -526
	SlotForegroundLimit    = -527 // absolute-white
)

// namedColors mirrors the original source's `colors` dictionary after
// its `remapped` overlay has been applied — the resulting, final
// values, not the pre-remap ones (§4 supplement #1).
var namedColors = map[string]int{
	"terminal-default":    SlotTerminalDefault,
	"application-border":  SlotApplicationBorder,
	"background-limit":    SlotBackgroundLimit,
	"foreground-adjacent": SlotForegroundAdjacent,
	"background-adjacent": SlotBackgroundAdjacent,
	"foreground-limit":    SlotForegroundLimit,

	"relative-red":     SlotRelativeRed,
	"relative-green":   SlotRelativeGreen,
	"relative-yellow":  SlotRelativeYellow,
	"relative-blue":    SlotRelativeBlue,
	"relative-magenta": SlotRelativeMagenta,
	"relative-cyan":    SlotRelativeCyan,

	"absolute-red":     SlotAbsoluteRed,
	"absolute-green":   SlotAbsoluteGreen,
	"absolute-yellow":  SlotAbsoluteYellow,
	"absolute-blue":    SlotAbsoluteBlue,
	"absolute-magenta": SlotAbsoluteMagenta,
	"absolute-cyan":    SlotAbsoluteCyan,

	// Common names, bound to the tty-16 palette by default.
	"black":   -1, // remapped to a direct xterm-256 code
	"red":     SlotRelativeRed,
	"green":   SlotRelativeGreen,
	"yellow":  SlotRelativeYellow,
	"blue":    SlotRelativeBlue,
	"magenta": -200, // remapped to a direct xterm-256 code
	"cyan":    -52,  // remapped to a direct xterm-256 code
	"white":   -232, // remapped to a direct xterm-256 code

	// Xterm-256 extensions; a modest list, some remapped onto the
	// tty-16 slots to keep them close to customized themes.
	"gray":       -248,
	"violet":     SlotRelativeMagenta,
	"teal":       SlotRelativeCyan,
	"pink":       SlotAbsoluteMagenta,
	"orange":     SlotAbsoluteCyan,
	"purple":     -54,
	"chartreuse": -119,
	"olive":      -101,
	"indigo":     -55,
	"maroon":     -89,
	"coral":      -210,
	"beige":      -231,
	"tan":        -182,
}

// LookupSlot resolves a named color slot (e.g. "relative-red",
// "terminal-default", "gray") to its numeric identifier. The second
// return is false for unknown names.
func LookupSlot(name string) (int, bool) {
	v, ok := namedColors[name]
	return v, ok
}

// ColorRef is a color as the encoder understands it: either an exact
// 24-bit RGB literal or a reference into the named slot table.
// [TrueColor] and [Slot] are its two implementations.
type ColorRef interface {
	isColorRef()
}

// TrueColor is a direct 24-bit RGB literal (a positive identifier in
// the spec's dual encoding).
type TrueColor int

func (TrueColor) isColorRef() {}

// RGB builds a TrueColor from individual 8-bit channels.
func RGB(r, g, b int) TrueColor {
	return TrueColor((r&0xFF)<<16 | (g&0xFF)<<8 | (b & 0xFF))
}

// Slot is a reference into the named color slot table (a non-positive
// identifier in the spec's dual encoding).
type Slot int

func (Slot) isColorRef() {}

// NamedSlot looks up name in the slot table and returns it as a Slot.
// It panics if name is not a known slot — callers that need the
// fallible form should use [LookupSlot] directly.
func NamedSlot(name string) Slot {
	v, ok := LookupSlot(name)
	if !ok {
		panic("xterm: unknown color slot " + name)
	}
	return Slot(v)
}

// resolveSGRParams returns the SGR parameter bytes that select ref as
// a foreground (fg=true) or background color, and whether ref
// resolves to "no color selected" (the terminal default, in which
// case callers should omit the prefix entirely).
//
// Slot values in -512..-527 map onto the basic/bright ANSI color
// parameters (30-37, 90-97) per the relative/absolute naming
// convention; SlotTerminalDefault yields no parameter at all
// (isDefault is true); any other slot is a direct xterm-256 code
// (38;5;n / 48;5;n). This mapping is this module's own decision
// (Open Question in spec.md §9 is silent on how slots reach the
// wire) — recorded in DESIGN.md.
func resolveSGRParams(ref ColorRef, fg bool) (params []string, isDefault bool) {
	switch c := ref.(type) {
	case TrueColor:
		r := (int(c) >> 16) & 0xFF
		g := (int(c) >> 8) & 0xFF
		b := int(c) & 0xFF
		if fg {
			return []string{"38", "2", strconv.Itoa(r), strconv.Itoa(g), strconv.Itoa(b)}, false
		}
		return []string{"48", "2", strconv.Itoa(r), strconv.Itoa(g), strconv.Itoa(b)}, false
	case Slot:
		n := int(c)
		switch {
		case n == SlotTerminalDefault:
			return nil, true
		case n >= -519 && n <= -512:
			idx := -512 - n
			if fg {
				return []string{strconv.Itoa(30 + idx)}, false
			}
			return []string{strconv.Itoa(40 + idx)}, false
		case n >= -527 && n <= -520:
			idx := -520 - n
			if fg {
				return []string{strconv.Itoa(90 + idx)}, false
			}
			return []string{strconv.Itoa(100 + idx)}, false
		default:
			code := -n
			if fg {
				return []string{"38", "5", strconv.Itoa(code)}, false
			}
			return []string{"48", "5", strconv.Itoa(code)}, false
		}
	default:
		return nil, true
	}
}

