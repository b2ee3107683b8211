package xterm

import (
	"strconv"
	"strings"
)

const (
	esc = "\x1b"
	csi = esc + "["
)

// Display synthesizes xterm-compatible output byte sequences. Its
// methods are pure functions of their arguments; Display itself
// carries no mutable state beyond the options it was built with
// (§4.B "Pure functions returning byte sequences; no internal
// state").
type Display struct {
	palette bool // quantize colors through Palette instead of truecolor
}

// NewDisplay builds a Display configured by opts.
func NewDisplay(opts ...Option) *Display {
	d := &Display{}
	for _, opt := range opts {
		opt.applyDisplay(d)
	}
	return d
}

// quantize rewrites a TrueColor ref into a Slot carrying its nearest
// xterm-256 code when the Display was built with [WithPalette]; any
// other ref, or a disabled palette, passes through unchanged (§4.B
// "Color selection... internal rationale").
func (d *Display) quantize(ref ColorRef) ColorRef {
	if !d.palette {
		return ref
	}
	tc, ok := ref.(TrueColor)
	if !ok {
		return ref
	}
	return Slot(-Translate(int(tc)).Code())
}

// CaretHide emits the sequence that hides the text cursor (DECTCEM).
func (d *Display) CaretHide() []byte {
	return []byte(csi + "?25l")
}

// CaretShow emits the sequence that restores cursor blink and shows
// the text cursor. The original implementation this is grounded on
// doubles the leading "[" here; that is a bug, not a feature, and is
// not reproduced.
func (d *Display) CaretShow() []byte {
	return []byte(csi + "?12l" + csi + "?25h")
}

// Seek moves the cursor to the absolute 0-based coordinate (x, y),
// translating to the terminal's 1-based wire form.
func (d *Display) Seek(x, y int) []byte {
	return []byte(csi + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H")
}

// SeekLine moves the cursor to the start of 0-based line n.
func (d *Display) SeekLine(n int) []byte {
	return []byte(csi + strconv.Itoa(n+1) + ";1H")
}

// SeekStartOfLine moves the cursor to column 0 of the current line.
func (d *Display) SeekStartOfLine() []byte {
	return []byte(csi + "1G")
}

// SeekHorizontalRelative moves the cursor n columns forward (n>0) or
// backward (n<0) on the current line.
func (d *Display) SeekHorizontalRelative(n int) []byte {
	if n == 0 {
		return nil
	}
	if n > 0 {
		return []byte(csi + strconv.Itoa(n) + "C")
	}
	return []byte(csi + strconv.Itoa(-n) + "D")
}

// SeekVerticalRelative moves the cursor n rows down (n>0) or up
// (n<0), preserving column.
func (d *Display) SeekVerticalRelative(n int) []byte {
	if n == 0 {
		return nil
	}
	if n > 0 {
		return []byte(csi + strconv.Itoa(n) + "B")
	}
	return []byte(csi + strconv.Itoa(-n) + "A")
}

// SeekRelative combines a horizontal and vertical relative move.
func (d *Display) SeekRelative(dx, dy int) []byte {
	var b []byte
	b = append(b, d.SeekHorizontalRelative(dx)...)
	b = append(b, d.SeekVerticalRelative(dy)...)
	return b
}

// SeekNextLine moves the cursor down one row, preserving column.
func (d *Display) SeekNextLine() []byte {
	return d.SeekVerticalRelative(1)
}

// SeekStartOfNextLine moves the cursor down one row and to column 0,
// unlike SeekNextLine, which preserves the column.
func (d *Display) SeekStartOfNextLine() []byte {
	return append(d.SeekNextLine(), d.SeekStartOfLine()...)
}

// StoreCaretPosition saves the current cursor position (DECSC).
func (d *Display) StoreCaretPosition() []byte {
	return []byte(esc + "7")
}

// RestoreCaretPosition restores a previously stored cursor position
// (DECRC).
func (d *Display) RestoreCaretPosition() []byte {
	return []byte(esc + "8")
}

// SaveScreen switches to the xterm alternate screen buffer (1049).
func (d *Display) SaveScreen() []byte {
	return []byte(csi + "?1049h")
}

// RestoreScreen switches back to the primary screen buffer (1049).
func (d *Display) RestoreScreen() []byte {
	return []byte(csi + "?1049l")
}

// Clear erases the entire visible screen.
func (d *Display) Clear() []byte {
	return []byte(csi + "2J")
}

// ClearLine moves the cursor to the start of 0-based line n and erases
// that entire line; callers needing in-place clearing of the current
// line should use ClearCurrentLine.
func (d *Display) ClearLine(n int) []byte {
	b := d.SeekLine(n)
	return append(b, csi+"2K"...)
}

// ClearToLine moves the cursor to the start of 0-based line n and
// erases from there to the end of the screen.
func (d *Display) ClearToLine(n int) []byte {
	b := d.SeekLine(n)
	return append(b, csi+"0J"...)
}

// ClearToBottom erases from the cursor position to the end of the
// screen.
func (d *Display) ClearToBottom() []byte {
	return []byte(csi + "0J")
}

// ClearBeforeCaret erases from the start of the line to the cursor.
func (d *Display) ClearBeforeCaret() []byte {
	return []byte(csi + "1K")
}

// ClearAfterCaret erases from the cursor to the end of the line.
func (d *Display) ClearAfterCaret() []byte {
	return []byte(csi + "0K")
}

// ClearCurrentLine erases the entire current line without moving the
// cursor.
func (d *Display) ClearCurrentLine() []byte {
	return []byte(csi + "2K")
}

// EnableLineWrap turns on automatic line wrap (DECAWM).
func (d *Display) EnableLineWrap() []byte {
	return []byte(csi + "?7h")
}

// DisableLineWrap turns off automatic line wrap (DECAWM).
func (d *Display) DisableLineWrap() []byte {
	return []byte(csi + "?7l")
}

// EnableMouse turns on SGR-1006 button and motion mouse reporting
// (DECSET 1002, 1006).
func (d *Display) EnableMouse() []byte {
	return []byte(csi + "?1002h" + csi + "?1006h")
}

// DisableMouse turns off mouse reporting.
func (d *Display) DisableMouse() []byte {
	return []byte(csi + "?1006l" + csi + "?1002l")
}

// InflateHorizontal inserts n blank characters at the cursor (ICH),
// shifting the remainder of the line right.
func (d *Display) InflateHorizontal(n int) []byte {
	if n <= 0 {
		return nil
	}
	return []byte(csi + strconv.Itoa(n) + "@")
}

// DeflateHorizontal deletes n characters at the cursor (DCH),
// shifting the remainder of the line left.
func (d *Display) DeflateHorizontal(n int) []byte {
	if n <= 0 {
		return nil
	}
	return []byte(csi + strconv.Itoa(n) + "P")
}

// InflateVertical inserts n blank lines at the cursor's row (IL).
func (d *Display) InflateVertical(n int) []byte {
	if n <= 0 {
		return nil
	}
	return []byte(csi + strconv.Itoa(n) + "L")
}

// DeflateVertical deletes n lines at the cursor's row (DL).
func (d *Display) DeflateVertical(n int) []byte {
	if n <= 0 {
		return nil
	}
	return []byte(csi + strconv.Itoa(n) + "M")
}

// InflateArea is a composite insert: it inflates n vertical lines
// then n horizontal columns at the cursor, used when growing a
// rectangular region rather than a single row or column.
func (d *Display) InflateArea(n int) []byte {
	b := d.InflateVertical(n)
	return append(b, d.InflateHorizontal(n)...)
}

// DeflateArea is the composite counterpart to InflateArea.
func (d *Display) DeflateArea(n int) []byte {
	b := d.DeflateVertical(n)
	return append(b, d.DeflateHorizontal(n)...)
}

// Erase erases n characters at the cursor in place (ECH), without
// shifting the remainder of the line.
func (d *Display) Erase(n int) []byte {
	if n <= 0 {
		return nil
	}
	return []byte(csi + strconv.Itoa(n) + "X")
}

// Blank is an alias of InflateHorizontal, named for call sites that
// think of the operation as "make room" rather than "insert".
func (d *Display) Blank(n int) []byte {
	return d.InflateHorizontal(n)
}

// Resize computes the delta between old and new column counts and
// emits InflateHorizontal for growth or DeflateHorizontal for
// shrinkage, and nothing when the widths are equal.
func (d *Display) Resize(oldWidth, newWidth int) []byte {
	delta := newWidth - oldWidth
	if delta > 0 {
		return d.InflateHorizontal(delta)
	}
	if delta < 0 {
		return d.DeflateHorizontal(-delta)
	}
	return nil
}

// Delete removes the region between 0-based columns [start, stop) on
// the current line via DeflateHorizontal.
func (d *Display) Delete(start, stop int) []byte {
	if stop <= start {
		return nil
	}
	out := []byte(csi + strconv.Itoa(start+1) + "G")
	return append(out, d.DeflateHorizontal(stop-start)...)
}

// Backspace emits n repetitions of "backspace space backspace", which
// erases the n characters to the left of the cursor by moving over
// them, blanking, and moving back.
func (d *Display) Backspace(n int) []byte {
	if n <= 0 {
		return nil
	}
	return []byte(strings.Repeat("\b \b", n))
}

// RenderParams is the set of arguments accepted by Style: the active
// style bits and the foreground/background colors to select, any of
// which may be left unset (the zero value) to inherit the ambient
// color.
type RenderParams struct {
	Styles     Style
	Foreground ColorRef
	Background ColorRef
}

// Style emits an SGR-prefixed, control-picture-safe rendering of
// text: style parameters first, then foreground, then background,
// followed by the text itself with any C0 control byte replaced by
// its Unicode control-picture glyph (U+2400 range), then an SGR
// reset, then optional restoration of an ambient foreground/
// background supplied via restore.
func (d *Display) Style(text string, params RenderParams, restore *RenderParams) []byte {
	var sgr []string
	for _, p := range params.Styles.initiateParams() {
		sgr = append(sgr, strconv.Itoa(p))
	}
	if params.Foreground != nil {
		if fg, isDefault := resolveSGRParams(d.quantize(params.Foreground), true); !isDefault {
			sgr = append(sgr, fg...)
		}
	}
	if params.Background != nil {
		if bg, isDefault := resolveSGRParams(d.quantize(params.Background), false); !isDefault {
			sgr = append(sgr, bg...)
		}
	}

	var out []byte
	if len(sgr) > 0 {
		out = append(out, csi+strings.Join(sgr, ";")+"m"...)
	}
	out = append(out, []byte(toControlPictures(text))...)
	out = append(out, csi+"0m"...)

	if restore != nil {
		var ambient []string
		if restore.Foreground != nil {
			if fg, isDefault := resolveSGRParams(d.quantize(restore.Foreground), true); !isDefault {
				ambient = append(ambient, fg...)
			}
		}
		if restore.Background != nil {
			if bg, isDefault := resolveSGRParams(d.quantize(restore.Background), false); !isDefault {
				ambient = append(ambient, bg...)
			}
		}
		if len(ambient) > 0 {
			out = append(out, csi+strings.Join(ambient, ";")+"m"...)
		}
	}
	return out
}

// Print renders text with C0 control bytes replaced by their
// control-picture glyph, with no SGR wrapping at all — for callers
// that want the substitution without any styling.
func (d *Display) Print(text string) []byte {
	return []byte(toControlPictures(text))
}

// StyledSpan is one element of the sequence RenderLine concatenates.
type StyledSpan struct {
	Text   string
	Params RenderParams
}

// RenderLine concatenates spans, each wrapped by Style, restoring the
// ambient colors between spans so unstyled text between them is not
// left tinted.
func (d *Display) RenderLine(spans []StyledSpan, ambient *RenderParams) []byte {
	var out []byte
	for _, span := range spans {
		out = append(out, d.Style(span.Text, span.Params, ambient)...)
	}
	return out
}

// OverwriteSpan is one element of Overwrite's input: a 0-based
// horizontal offset and the styled text to place there.
type OverwriteSpan struct {
	Offset int
	Span   StyledSpan
}

// Overwrite emits a horizontal seek followed by a style write, for
// each span in order, letting a caller patch disjoint regions of a
// single line without repainting it.
func (d *Display) Overwrite(spans []OverwriteSpan) []byte {
	var out []byte
	for _, sp := range spans {
		out = append(out, []byte(csi+strconv.Itoa(sp.Offset+1)+"G")...)
		out = append(out, d.Style(sp.Span.Text, sp.Span.Params, nil)...)
	}
	return out
}

// controlPictures maps C0 control bytes (and DEL) to their Unicode
// control-picture glyph, used by Style to keep raw control bytes out
// of rendered text.
var controlPictures = func() [33]rune {
	var t [33]rune
	for i := 0; i < 32; i++ {
		t[i] = rune(0x2400 + i)
	}
	t[32] = 0x2421 // DEL
	return t
}()

func toControlPictures(s string) string {
	hasControl := false
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			hasControl = true
			break
		}
	}
	if !hasControl {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x20:
			b.WriteRune(controlPictures[r])
		case r == 0x7f:
			b.WriteRune(controlPictures[32])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
