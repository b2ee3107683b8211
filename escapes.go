package xterm

import "fmt"

// escape_codes / control_characters (§4.C). Built once at package
// initialization by buildEscapeCodes/buildControlCharacters, grounded
// on the original source's escape_codes table and its render_codes()
// expansion step.
var (
	escapeCodes       map[string]Character
	controlCharacters map[byte]Character
)

func init() {
	escapeCodes = buildEscapeCodes()
	controlCharacters = buildControlCharacters()
}

// modifierLadder is the five-element (param, Modifiers) ladder the
// escape table build step expands every base code with: 2=shift,
// 3=meta, 5=ctrl, 6=shift+ctrl, 7=ctrl+meta (§4.C, §8 "Modifier
// ladder").
var modifierLadder = []struct {
	param int
	mods  Modifiers
}{
	{2, ModShift},
	{3, ModMeta},
	{5, ModControl},
	{6, ModShift | ModControl},
	{7, ModControl | ModMeta},
}

func buildEscapeCodes() map[string]Character {
	m := make(map[string]Character, 256)

	put := func(body string, c Character) { m[body] = c }
	nav := func(body, name string, mods Modifiers) Character {
		return newCharacter(Navigation, "["+body, mods, name)
	}
	fn := func(body string, number int, mods Modifiers) Character {
		return newCharacter(Function, "["+body, mods, number)
	}
	fnNamed := func(body, name string, mods Modifiers) Character {
		return newCharacter(Function, "["+body, mods, name)
	}
	delta := func(body, name string, mods Modifiers) Character {
		return newCharacter(Delta, "["+body, mods, name)
	}

	put("\x1b", newCharacter(Control, "\x1b", 0, "escape"))
	put(" ", newCharacter(Control, " ", ModMeta, "space"))
	put("\t", newCharacter(Control, "\t", ModMeta, "tab"))
	// The original source has a duplicate "[Z" entry with conflicting
	// modifier sets (shift-only, then shift+meta); the second silently
	// wins in a Python dict literal. The shift-only variant is kept
	// here per the documented resolution, and shift+meta is dropped.
	put("[Z", newCharacter(Control, "[Z", ModShift, "tab"))
	put("OM", newCharacter(Control, "OM", 0, "enter"))

	put("\x7f", newCharacter(Delta, "\x7f", ModMeta, "delete"))
	put("\b", newCharacter(Delta, "\b", ModMeta, "backspace"))

	put("[2~", newCharacter(Delta, "[2~", 0, "insert"))
	put("[3~", newCharacter(Delta, "[3~", 0, "delete"))

	put("[A", nav("A", "up", 0))
	put("[B", nav("B", "down", 0))
	put("[C", nav("C", "right", 0))
	put("[D", nav("D", "left", 0))
	put("OA", newCharacter(Navigation, "OA", 0, "up"))
	put("OB", newCharacter(Navigation, "OB", 0, "down"))
	put("OC", newCharacter(Navigation, "OC", 0, "right"))
	put("OD", newCharacter(Navigation, "OD", 0, "left"))

	put("[H", nav("H", "home", 0))
	put("[F", nav("F", "end", 0))
	put("[5~", newCharacter(Navigation, "[5~", 0, "pageup"))
	put("[6~", newCharacter(Navigation, "[6~", 0, "pagedown"))

	put("OP", newCharacter(Function, "OP", 0, 1))
	put("OQ", newCharacter(Function, "OQ", 0, 2))
	put("OR", newCharacter(Function, "OR", 0, 3))
	put("OS", newCharacter(Function, "OS", 0, 4))
	fnKeys := []struct {
		body string
		n    int
	}{
		{"[15~", 5}, {"[17~", 6}, {"[18~", 7}, {"[19~", 8},
		{"[20~", 9}, {"[21~", 10}, {"[23~", 11}, {"[24~", 12},
	}
	for _, k := range fnKeys {
		put(k.body, newCharacter(Function, k.body, 0, k.n))
	}
	put("[29~", newCharacter(Function, "[29~", 0, "applications"))
	put("[34~", newCharacter(Function, "[34~", 0, "windows"))

	put("[200~", newCharacter(Paste, "[200~", 0, "start"))
	put("[201~", newCharacter(Paste, "[201~", 0, "stop"))

	// Insert/delete with modifiers: "[2;<n>~" / "[3;<n>~".
	for _, mod := range modifierLadder {
		put(fmt.Sprintf("[2;%d~", mod.param), delta(fmt.Sprintf("2;%d~", mod.param), "insert", mod.mods))
		put(fmt.Sprintf("[3;%d~", mod.param), delta(fmt.Sprintf("3;%d~", mod.param), "delete", mod.mods))
	}

	// Page up/down with modifiers: "[5;<n>~" / "[6;<n>~".
	for _, mod := range modifierLadder {
		put(fmt.Sprintf("[5;%d~", mod.param), nav(fmt.Sprintf("5;%d~", mod.param), "pageup", mod.mods))
		put(fmt.Sprintf("[6;%d~", mod.param), nav(fmt.Sprintf("6;%d~", mod.param), "pagedown", mod.mods))
	}

	// Arrows/home/end with modifiers: "[1;<n><letter>".
	arrows := []struct{ letter, name string }{
		{"A", "up"}, {"B", "down"}, {"C", "right"}, {"D", "left"},
		{"H", "home"}, {"F", "end"},
	}
	for _, a := range arrows {
		for _, mod := range modifierLadder {
			body := fmt.Sprintf("1;%d%s", mod.param, a.letter)
			put("["+body, nav(body, a.name, mod.mods))
		}
	}

	// F1-F4 with modifiers: "[1;<n><P..S>".
	pfChars := []byte{'P', 'Q', 'R', 'S'}
	for i, ch := range pfChars {
		for _, mod := range modifierLadder {
			body := fmt.Sprintf("1;%d%c", mod.param, ch)
			put("["+body, fn(body, i+1, mod.mods))
		}
	}

	// F5-F12 with modifiers: "[<kid>;<n>~".
	f5to12 := []struct {
		kid, fn int
	}{
		{15, 5}, {17, 6}, {18, 7}, {19, 8}, {20, 9}, {21, 10}, {23, 11}, {24, 12},
	}
	for _, k := range f5to12 {
		for _, mod := range modifierLadder {
			body := fmt.Sprintf("%d;%d~", k.kid, mod.param)
			put("["+body, fn(body, k.fn, mod.mods))
		}
	}
	// The original source's "media keys" build block is a byte-for-byte
	// copy of the F5-F12 block above and adds nothing new to the table
	// (every key it writes is immediately overwritten by itself); it is
	// intentionally not reproduced here.

	// applications/windows with modifiers: "[<kid>;<n>~".
	named := []struct {
		kid  int
		name string
	}{{29, "applications"}, {34, "windows"}}
	for _, nmd := range named {
		for _, mod := range modifierLadder {
			body := fmt.Sprintf("%d;%d~", nmd.kid, mod.param)
			put("["+body, fnNamed(body, nmd.name, mod.mods))
		}
	}

	return m
}

// controlLetterOverrides replaces the Ctrl+<letter> defaults built by
// buildControlCharacters with their conventional human names.
var controlLetterOverrides = map[byte]string{
	'\t': "tab", '\r': "return", '\n': "newline",
	0x7f: "delete", '\b': "backspace", ' ': "space",
	0x00: "nul",
	0x1d: "bracket", 0x1c: "backslash", 0x1f: "underscore",
}

func buildControlCharacters() map[byte]Character {
	m := make(map[byte]Character, 40)
	for b := byte('a'); b <= 'z'; b++ {
		ctrl := b - 'a' + 1
		m[ctrl] = newCharacter(Control, string(rune(ctrl)), ModControl, string(rune(b)))
	}
	for b, name := range controlLetterOverrides {
		switch b {
		case 0x7f, '\b':
			m[b] = newCharacter(Delta, string(rune(b)), 0, name)
		case 0x1d, 0x1c, 0x1f:
			// Bracket/backslash/underscore are genuine Ctrl+<key> C0
			// codes, unlike the human-named keys below, which are
			// reachable without holding control.
			m[b] = newCharacter(Control, string(rune(b)), ModControl, name)
		default:
			m[b] = newCharacter(Control, string(rune(b)), 0, name)
		}
	}
	return m
}
