//go:build unix

package xterm

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Term is a scoped acquisition of a tty file descriptor: the raw-mode
// transition and the original settings needed to undo it (§4.D, §9
// "Global state... guaranteed restore of the prior settings on all
// exit paths").
type Term struct {
	fd       int
	mu       sync.Mutex
	snapshot *term.State
	restored bool
}

// Open validates that f refers to a terminal and takes a settings
// snapshot, without yet altering any mode. Call [Term.SetRaw] to enter
// cbreak+raw mode.
func Open(f *os.File) (*Term, error) {
	fd := int(f.Fd())
	if !isatty.IsTerminal(uintptr(fd)) && !isatty.IsCygwinTerminal(uintptr(fd)) {
		return nil, ErrNotATerminal
	}
	snap, err := term.GetState(fd)
	if err != nil {
		log().Error().Err(err).Int("fd", fd).Msg("settings snapshot failed")
		return nil, err
	}
	return &Term{fd: fd, snapshot: snap}, nil
}

// SetRaw enters cbreak+raw mode, disabling local echo and CRLF
// translation on input (§4.D "set_raw").
func (t *Term) SetRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.restored {
		return ErrClosedDevice
	}
	_, err := term.MakeRaw(t.fd)
	return err
}

// Dimensions queries the terminal's current column and row count via
// the platform window-size ioctl (§4.D "dimensions").
func (t *Term) Dimensions() (columns, rows int, err error) {
	t.mu.Lock()
	restored := t.restored
	t.mu.Unlock()
	if restored {
		return 0, 0, ErrClosedDevice
	}
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Restore reapplies the settings snapshot taken by [Open]. It is
// idempotent: calling it more than once after the first successful
// restore is a no-op, matching §5's "Restoration must be idempotent".
func (t *Term) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.restored {
		return nil
	}
	if err := term.Restore(t.fd, t.snapshot); err != nil {
		return err
	}
	t.restored = true
	return nil
}
