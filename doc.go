// Package xterm implements a terminal I/O toolkit for interactive
// programs talking to xterm-compatible terminal emulators over a Unix
// pty or tty device.
//
// Two subsystems form the core. [Parser] decodes a raw byte stream
// read from the terminal into a sequence of [Character] events:
// literal runes, C0 controls, navigation and function keys, modifier
// variants, bracketed-paste markers, and SGR-1006 mouse reports.
// [Display] is the symmetric encoder: it synthesizes the byte
// sequences that drive cursor movement, styled text, color selection,
// screen save/restore, and local region edits. [Translate] sits
// beneath Display, translating arbitrary 24-bit RGB into the nearest
// xterm-256 color or grayscale index.
//
// A fourth, small surface ([Open], [Term]) wraps the platform calls
// needed to put a tty into raw mode, query its size, and restore it
// on exit. It is the only part of the package that touches the
// operating system.
//
// xterm assumes an xterm-compatible terminal; TERM is never
// consulted and no terminfo database is read.
package xterm
