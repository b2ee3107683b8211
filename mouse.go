package xterm

import (
	"strconv"
	"strings"
)

// decodeMouse parses a full escaped body of the form "[<B;X;Y" followed
// by a terminating M or m, as dispatched by escapedEvents when the
// body starts with "[<", and returns the Character it represents
// (§4.C "Mouse decoder", §8 scenarios 4-6).
//
// RawMask on the returned MouseEvent deliberately retains the low two
// bits of the button field minus its event-class offset rather than
// pure modifier bits;
// §9 notes this leaks implementation detail and instructs that it be
// kept as a documented, distinct field rather than conflated with
// Modifiers.
func decodeMouse(body string) (Character, bool) {
	if len(body) < 4 || body[:2] != "[<" {
		return Character{}, false
	}
	terminator := body[len(body)-1]
	if terminator != 'M' && terminator != 'm' {
		return Character{}, false
	}
	fields := strings.SplitN(body[2:len(body)-1], ";", 3)
	if len(fields) != 3 {
		return Character{}, false
	}
	button, err1 := strconv.Atoi(fields[0])
	x, err2 := strconv.Atoi(fields[1])
	y, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return Character{}, false
	}

	var (
		typ    EventType
		action int
		offset int
	)
	switch {
	case button < 32:
		typ = Mouse
		offset = 0
		if terminator == 'M' {
			action = 1
		} else {
			action = -1
		}
	case button < 64:
		typ = Drag
		offset = 32
		action = 0
	default:
		typ = Scroll
		offset = 64
		if button%2 != 0 {
			action = 1
			offset++
		} else {
			action = -1
		}
	}

	raw := button - offset
	mods := NewModifiers(raw&4 != 0, raw&8 != 0, raw&16 != 0)

	evt := MouseEvent{
		Point:   Point{X: x, Y: y},
		Action:  action,
		RawMask: raw & 0b11,
	}
	return newCharacter(typ, body, mods, evt), true
}
