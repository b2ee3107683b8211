package xterm_test

import (
	"testing"

	"github.com/bengarrett/xterm"
	"github.com/nalgeon/be"
)

func decodeOne(t *testing.T, input string) xterm.Character {
	t.Helper()
	p := xterm.NewParser()
	events, err := p.Decode([]byte(input))
	be.Err(t, err, nil)
	be.Equal(t, len(events), 1)
	return events[0]
}

func TestLiteralUppercase(t *testing.T) {
	c := decodeOne(t, "A")
	be.Equal(t, c.Type(), xterm.Literal)
	be.Equal(t, c.Rune(), 'a')
	be.Equal(t, c.Source(), "A")
	be.True(t, c.Modifiers().Shift())
	be.True(t, !c.Modifiers().Meta())
	be.True(t, !c.Modifiers().Control())
}

func TestLiteralLowercaseHasNoModifiers(t *testing.T) {
	c := decodeOne(t, "a")
	be.Equal(t, c.Rune(), 'a')
	be.True(t, c.Modifiers().None())
}

func TestLiteralRoundTripMultibyte(t *testing.T) {
	p := xterm.NewParser()
	events, err := p.Decode([]byte("héllo"))
	be.Err(t, err, nil)
	be.Equal(t, len(events), 5)
	be.Equal(t, events[1].Rune(), 'é')
}

func TestControlCoverageLetters(t *testing.T) {
	p := xterm.NewParser()
	for c := byte(1); c <= 26; c++ {
		events, err := p.Decode([]byte{c})
		be.Err(t, err, nil)
		be.Equal(t, len(events), 1)
		ev := events[0]
		switch c {
		case 9, 13, 10, 0x7f, 8:
			// human-name overrides checked separately
		default:
			be.Equal(t, ev.Type(), xterm.Control)
			be.True(t, ev.Modifiers().Control())
			be.Equal(t, ev.Name(), string(rune('a'+c-1)))
		}
	}
}

func TestControlOverrides(t *testing.T) {
	cases := []struct {
		b    byte
		name string
		typ  xterm.EventType
	}{
		{'\t', "tab", xterm.Control},
		{'\r', "return", xterm.Control},
		{'\n', "newline", xterm.Control},
		{0x7f, "delete", xterm.Delta},
		{'\b', "backspace", xterm.Delta},
	}
	p := xterm.NewParser()
	for _, c := range cases {
		events, err := p.Decode([]byte{c.b})
		be.Err(t, err, nil)
		be.Equal(t, len(events), 1)
		be.Equal(t, events[0].Type(), c.typ)
		be.Equal(t, events[0].Name(), c.name)
	}
}

func TestControlOverridesCarryControlModifier(t *testing.T) {
	cases := []struct {
		b    byte
		name string
	}{
		{0x1d, "bracket"},
		{0x1c, "backslash"},
		{0x1f, "underscore"},
	}
	p := xterm.NewParser()
	for _, c := range cases {
		events, err := p.Decode([]byte{c.b})
		be.Err(t, err, nil)
		be.Equal(t, len(events), 1)
		be.Equal(t, events[0].Type(), xterm.Control)
		be.Equal(t, events[0].Name(), c.name)
		be.True(t, events[0].Modifiers().Control())
	}
}

func TestBareEscapeResolvesImmediately(t *testing.T) {
	p := xterm.NewParser()
	events, err := p.Decode([]byte("\x1b"))
	be.Err(t, err, nil)
	be.Equal(t, len(events), 1)
	be.Equal(t, events[0].Type(), xterm.Control)
	be.Equal(t, events[0].Name(), "escape")

	// A following, unrelated keystroke must decode cleanly rather than
	// being corrupted by a stale pending buffer.
	more, err := p.Decode([]byte("a"))
	be.Err(t, err, nil)
	be.Equal(t, len(more), 1)
	be.Equal(t, more[0].Type(), xterm.Literal)
	be.Equal(t, more[0].Rune(), 'a')
}

func TestNavigationUp(t *testing.T) {
	c := decodeOne(t, "\x1b[A")
	be.Equal(t, c.Type(), xterm.Navigation)
	be.Equal(t, c.Name(), "up")
	be.True(t, c.Modifiers().None())
}

func TestNavigationUpControlModifier(t *testing.T) {
	c := decodeOne(t, "\x1b[1;5A")
	be.Equal(t, c.Type(), xterm.Navigation)
	be.Equal(t, c.Name(), "up")
	be.True(t, c.Modifiers().Control())
	be.True(t, !c.Modifiers().Shift())
}

func TestModifierLadderAllBases(t *testing.T) {
	bases := []struct {
		formatting string
		name       string
	}{
		{"\x1b[1;%dA", "up"},
		{"\x1b[1;%dB", "down"},
		{"\x1b[1;%dC", "right"},
		{"\x1b[1;%dD", "left"},
		{"\x1b[1;%dH", "home"},
		{"\x1b[1;%dF", "end"},
	}
	ladder := []struct {
		param                  int
		shift, meta, control bool
	}{
		{2, true, false, false},
		{3, false, true, false},
		{5, false, false, true},
		{6, true, false, true},
		{7, false, true, true},
	}
	for _, base := range bases {
		for _, l := range ladder {
			input := sprintfTest(base.formatting, l.param)
			c := decodeOne(t, input)
			be.Equal(t, c.Type(), xterm.Navigation)
			be.Equal(t, c.Name(), base.name)
			be.Equal(t, c.Modifiers().Shift(), l.shift)
			be.Equal(t, c.Modifiers().Meta(), l.meta)
			be.Equal(t, c.Modifiers().Control(), l.control)
		}
	}
}

func sprintfTest(format string, n int) string {
	out := make([]byte, 0, len(format))
	for i := 0; i < len(format); i++ {
		if i+1 < len(format) && format[i] == '%' && format[i+1] == 'd' {
			out = append(out, []byte(itoaTest(n))...)
			i++
			continue
		}
		out = append(out, format[i])
	}
	return string(out)
}

func itoaTest(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func TestMousePress(t *testing.T) {
	c := decodeOne(t, "\x1b[<0;10;20M")
	be.Equal(t, c.Type(), xterm.Mouse)
	m, ok := c.MouseData()
	be.True(t, ok)
	be.Equal(t, m.Point, xterm.Point{X: 10, Y: 20})
	be.Equal(t, m.Action, 1)
	be.Equal(t, m.RawMask, 0)
	be.True(t, c.Modifiers().None())
}

func TestMouseDrag(t *testing.T) {
	c := decodeOne(t, "\x1b[<35;5;7M")
	be.Equal(t, c.Type(), xterm.Drag)
	m, _ := c.MouseData()
	be.Equal(t, m.Point, xterm.Point{X: 5, Y: 7})
	be.Equal(t, m.Action, 0)
	be.Equal(t, m.RawMask, 3)
}

func TestMouseScrollUp(t *testing.T) {
	c := decodeOne(t, "\x1b[<65;1;1M")
	be.Equal(t, c.Type(), xterm.Scroll)
	m, _ := c.MouseData()
	be.Equal(t, m.Action, 1)
}

func TestShiftTabResolvesToShiftOnly(t *testing.T) {
	c := decodeOne(t, "\x1b[Z")
	be.Equal(t, c.Name(), "tab")
	be.True(t, c.Modifiers().Shift())
	be.True(t, !c.Modifiers().Meta())
}

func TestBracketedPasteMarkers(t *testing.T) {
	p := xterm.NewParser()
	events, err := p.Decode([]byte("\x1b[200~hi\x1b[201~"))
	be.Err(t, err, nil)
	be.Equal(t, len(events), 4)
	be.Equal(t, events[0].Type(), xterm.Paste)
	be.Equal(t, events[0].Name(), "start")
	be.Equal(t, events[3].Type(), xterm.Paste)
	be.Equal(t, events[3].Name(), "stop")
}

func TestUnrecognizedEscapeIsAudited(t *testing.T) {
	c := decodeOne(t, "\x1b[999z")
	be.Equal(t, c.Type(), xterm.Escaped)
	be.Equal(t, c.Name(), "[999z")
}

func TestInvalidUTF8FailsChunk(t *testing.T) {
	p := xterm.NewParser()
	_, err := p.Decode([]byte{0xff, 0xfe})
	be.Err(t, err, xterm.ErrDecoding)
}

func TestEmptyChunkIsShortRead(t *testing.T) {
	p := xterm.NewParser()
	_, err := p.Decode(nil)
	be.Err(t, err, xterm.ErrShortRead)
}

func TestSplitSequenceAcrossChunks(t *testing.T) {
	p := xterm.NewParser()
	events, err := p.Decode([]byte("\x1b[1;"))
	be.Err(t, err, nil)
	be.Equal(t, len(events), 0)

	events, err = p.Decode([]byte("5A"))
	be.Err(t, err, nil)
	be.Equal(t, len(events), 1)
	be.Equal(t, events[0].Type(), xterm.Navigation)
	be.Equal(t, events[0].Name(), "up")
	be.True(t, events[0].Modifiers().Control())
}
