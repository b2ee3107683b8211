package xterm

import (
	"strings"
	"unicode/utf8"
)

// Parser decodes raw terminal input into [Character] events (§4.C).
// A Parser is not safe for concurrent use from multiple goroutines
// without external synchronization, matching the single-threaded
// scheduling model of §5.
type Parser struct {
	maxPending     int
	bracketedPaste bool
	mouseReporting bool
	pending        []byte // bytes held across Decode calls for a split sequence
}

// NewParser builds a Parser configured by opts. Bracketed-paste and
// mouse-report recognition are both enabled by default; disabling
// either via [WithBracketedPaste]/[WithMouseReporting] does not change
// the wire format the parser accepts, only whether those bodies
// resolve to Paste/Mouse/Drag/Scroll events or fall through to a
// generic Escaped event, for callers whose terminal setup never emits
// those reports and would rather audit them as unrecognized.
func NewParser(opts ...Option) *Parser {
	p := &Parser{maxPending: 32, bracketedPaste: true, mouseReporting: true}
	for _, opt := range opts {
		opt.applyParser(p)
	}
	return p
}

// Decode decodes one chunk of terminal input into an ordered sequence
// of Character events. chunk must be valid UTF-8; invalid input fails
// the whole chunk with ErrDecoding rather than emitting partial
// results (§7 "Decoding failure").
//
// A chunk ending mid-escape-sequence is held in an internal pending
// buffer and prefixed onto the next call's chunk, per §9's
// recommendation to add a small re-entrant buffer rather than leave
// split reads undefined. The pending buffer is bounded by maxPending
// (set via [WithMaxPending]); if it would grow past that bound, it is
// instead flushed as a single Escaped event to avoid unbounded memory
// growth on a terminal that never sends a terminator.
func (p *Parser) Decode(chunk []byte) ([]Character, error) {
	if len(chunk) == 0 {
		if len(p.pending) == 0 {
			return nil, ErrShortRead
		}
		return nil, nil
	}
	if !utf8.Valid(chunk) {
		return nil, ErrDecoding
	}

	data := string(chunk)
	if len(p.pending) > 0 {
		data = string(p.pending) + data
		p.pending = nil
	}

	events, heldTail := p.constructCharacterEvents(data)
	if heldTail != "" {
		if len(heldTail) > p.maxPending {
			events = append(events, p.escapedEvents(heldTail[1:])...)
		} else {
			p.pending = []byte(heldTail)
		}
	}

	log().Trace().Int("events", len(events)).Int("bytes", len(chunk)).Msg("decoded chunk")
	return events, nil
}

// Reset discards any pending partial sequence, for use after a
// resynchronization point (e.g. the caller detected a long idle gap).
func (p *Parser) Reset() {
	p.pending = nil
}

// constructCharacterEvents implements the chunk-decode algorithm of
// §4.C: find the first ESC; literal-event everything before it;
// split the remainder on ESC, collapsing consecutive empty pieces
// (escape-escape) into the run prefixed onto the following body; and
// dispatch each resulting body to escapedEvents. A bracketed-paste
// marker followed by more text in the same piece is split: the marker
// is dispatched and the text after it becomes literal events.
//
// A trailing, unterminated escape body is returned as heldTail
// (prefixed with its triggering ESC byte so it can be concatenated
// directly onto the next chunk and re-walked from the top) rather
// than resolved immediately, so Decode can decide whether to buffer
// it across a read boundary or flush it as an Escaped event.
func (p *Parser) constructCharacterEvents(data string) (events []Character, heldTail string) {
	first := strings.IndexByte(data, 0x1b)
	if first == -1 {
		return literalEvents(data), ""
	}

	if first > 0 {
		// The prefix before the first ESC contains no escape bytes by
		// definition, so it is tokenized the same way a pure-literal
		// chunk would be rather than folded into one opaque event.
		events = append(events, literalEvents(data[:first])...)
	}

	rest := data[first:]
	pieces := strings.Split(rest, "\x1b")
	pieces = pieces[1:] // the first split piece is always empty (rest starts with ESC)

	escapeLevel := 0
	for i, piece := range pieces {
		isLast := i == len(pieces)-1
		if piece == "" {
			escapeLevel++
			continue
		}
		body := repeatEscape(escapeLevel) + piece
		// Text following a bracketed-paste marker in the same piece is
		// pasted input, not part of the escape body: the marker resolves
		// on its own and the rest becomes literal events.
		trailing := ""
		for _, marker := range [...]string{"[200~", "[201~"} {
			if len(body) > len(marker) && strings.HasPrefix(body, marker) {
				body, trailing = marker, body[len(marker):]
			}
		}
		if isLast && trailing == "" && !looksTerminated(body) {
			return events, "\x1b" + body
		}
		events = append(events, p.escapedEvents(body)...)
		events = append(events, literalEvents(trailing)...)
		escapeLevel = 0
	}
	if escapeLevel > 0 {
		// Trailing bare ESC run with nothing following it. A single ESC
		// is a complete, recognized keystroke (escapeCodes["\x1b")) and
		// resolves immediately, same as any other recognized body; only
		// a genuinely ambiguous run (escapeLevel > 1, no match) is held
		// for more bytes.
		body := repeatEscape(escapeLevel)
		if !looksTerminated(body) {
			return events, "\x1b" + body
		}
		events = append(events, p.escapedEvents(body)...)
	}
	return events, ""
}

func repeatEscape(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 0x1b
	}
	return string(b)
}

// looksTerminated is a conservative check used only to decide whether
// a trailing body should be held for more bytes: a body already
// present in escapeCodes is complete by definition, and any other
// body is considered complete once it ends in a recognized terminator
// byte (a letter, '~', 'M', or 'm'), which covers CSI, SS3 and SGR-1006
// forms. Ambiguous partial prefixes (e.g. "[1;5" with no final byte)
// are held for the next chunk.
func looksTerminated(body string) bool {
	if _, ok := escapeCodes[body]; ok {
		return true
	}
	if body == "" {
		return false
	}
	last := body[len(body)-1]
	switch {
	case last >= 'A' && last <= 'Z':
		return true
	case last >= 'a' && last <= 'z':
		return true
	case last == '~':
		return true
	default:
		return false
	}
}

// escapedEvents implements §4.C step 5: a recognized escape_codes
// entry wins outright; an SGR-1006 mouse body is dispatched to the
// mouse decoder; anything else becomes a generic Escaped event
// carrying the raw body, never failing the stream (§7 "Malformed
// escape"). Bracketed-paste markers and mouse/drag/scroll reports can
// each be turned off via [WithBracketedPaste]/[WithMouseReporting],
// in which case their bodies fall through to the generic Escaped case
// instead.
func (p *Parser) escapedEvents(body string) []Character {
	if c, ok := escapeCodes[body]; ok {
		if !p.bracketedPaste && c.Type() == Paste {
			return []Character{newCharacter(Escaped, body, 0, body)}
		}
		return []Character{c}
	}
	if p.mouseReporting && len(body) >= 2 && body[0] == '[' && body[1] == '<' {
		if c, ok := decodeMouse(body); ok {
			return []Character{c}
		}
	}
	return []Character{newCharacter(Escaped, body, 0, body)}
}

// literalEvents resolves a run of non-escape input into one event per
// code point, consulting controlCharacters first for C0 bytes.
func literalEvents(data string) []Character {
	events := make([]Character, 0, len(data))
	for _, r := range data {
		if r < 0x80 {
			if c, ok := controlCharacters[byte(r)]; ok {
				events = append(events, c)
				continue
			}
		}
		events = append(events, literalCharacter(r))
	}
	return events
}

func literalCharacter(r rune) Character {
	id := toLowerRune(r)
	mods := Modifiers(0)
	if id != r {
		mods = ModShift
	}
	return newCharacter(Literal, string(r), mods, id)
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
