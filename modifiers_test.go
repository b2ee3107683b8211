package xterm_test

import (
	"testing"

	"github.com/bengarrett/xterm"
	"github.com/nalgeon/be"
)

func TestModifiersString(t *testing.T) {
	be.Equal(t, xterm.NewModifiers(false, false, false).String(), "none")
	be.Equal(t, xterm.NewModifiers(true, false, false).String(), "shift")
	be.Equal(t, xterm.NewModifiers(true, false, true).String(), "shift+control")
	be.Equal(t, xterm.NewModifiers(false, true, true).String(), "meta+control")
}

func TestModifiersNone(t *testing.T) {
	be.True(t, xterm.Modifiers(0).None())
	be.True(t, !xterm.NewModifiers(true, false, false).None())
}
