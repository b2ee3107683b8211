package xterm_test

import (
	"testing"

	"github.com/bengarrett/xterm"
	"github.com/nalgeon/be"
)

func TestLookupSlotKnown(t *testing.T) {
	v, ok := xterm.LookupSlot("terminal-default")
	be.True(t, ok)
	be.Equal(t, v, xterm.SlotTerminalDefault)
}

func TestLookupSlotUnknown(t *testing.T) {
	_, ok := xterm.LookupSlot("not-a-color")
	be.True(t, !ok)
}

func TestTrueColorRGB(t *testing.T) {
	c := xterm.RGB(0x10, 0x20, 0x30)
	be.Equal(t, int(c), 0x102030)
}

func TestNamedSlotPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown slot name")
		}
	}()
	xterm.NamedSlot("definitely-not-a-slot")
}
