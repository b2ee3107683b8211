package xterm

import "errors"

var (
	// ErrDecoding is returned by [Parser.Decode] when a chunk contains
	// bytes that are not valid UTF-8. The parser does not attempt to
	// resynchronize; the caller may discard or re-frame the chunk.
	ErrDecoding = errors.New("xterm: invalid UTF-8 in input chunk")

	// ErrShortRead is returned when Decode is given a zero-length
	// chunk while no escape sequence is pending. Terminal EOF itself
	// is the caller's read-side concern; this only flags the decoder
	// being asked to do work on nothing.
	ErrShortRead = errors.New("xterm: empty input chunk")

	// ErrNotATerminal is returned by [Open] when the given file
	// descriptor is not backed by a tty device.
	ErrNotATerminal = errors.New("xterm: file descriptor is not a terminal")

	// ErrClosedDevice is returned by [Term.SetRaw] and
	// [Term.Dimensions] once [Term.Restore] has succeeded.
	ErrClosedDevice = errors.New("xterm: terminal device already restored")
)
