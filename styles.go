package xterm

// Style is a bit set of the text render attributes the encoder
// recognizes (§4.B style table). Bit order is arbitrary;
// only the SGR parameter tables below are load-bearing.
type Style uint16

const (
	StyleBold Style = 1 << iota
	StyleFeint
	StyleItalic
	StyleUnderline
	StyleDoubleUnderline
	StyleBlink
	StyleRapidBlink
	StyleReverse
	StyleInvisible
	StyleCross
)

// styleCodes pairs each Style bit with its SGR initiate and terminate
// parameters, grounded on the original source's style_codes table.
// Bold/feint share a single terminator (22), as do blink/rapid-blink
// (25), matching the original exactly.
var styleCodes = []struct {
	bit                Style
	initiate, terminate int
}{
	{StyleBold, 1, 22},
	{StyleFeint, 2, 22},
	{StyleItalic, 3, 23},
	{StyleUnderline, 4, 24},
	{StyleDoubleUnderline, 21, 24},
	{StyleBlink, 5, 25},
	{StyleRapidBlink, 6, 25},
	{StyleReverse, 7, 27},
	{StyleInvisible, 8, 28},
	{StyleCross, 9, 29},
}

// has reports whether bit is set in s.
func (s Style) has(bit Style) bool { return s&bit != 0 }

// initiateParams returns the SGR parameter numbers that turn on every
// bit set in s, in table order.
func (s Style) initiateParams() []int {
	var params []int
	for _, sc := range styleCodes {
		if s.has(sc.bit) {
			params = append(params, sc.initiate)
		}
	}
	return params
}
