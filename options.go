package xterm

import "github.com/rs/zerolog"

// Option configures a [Parser] or [Display]. Most options are
// meaningful to only one of the two constructors; applying one to the
// wrong constructor is a silent no-op rather than an error, matching
// the permissive functional-options style the teacher constructors
// use.
type Option struct {
	parser  func(*Parser)
	display func(*Display)
}

func (o Option) applyParser(p *Parser) {
	if o.parser != nil {
		o.parser(p)
	}
}

func (o Option) applyDisplay(d *Display) {
	if o.display != nil {
		o.display(d)
	}
}

// WithBracketedPaste toggles whether a [Parser] resolves "[200~"/
// "[201~" into Paste start/stop events. Disabled, those bodies fall
// through to generic Escaped events instead. Enabled by default.
func WithBracketedPaste(enabled bool) Option {
	return Option{parser: func(p *Parser) {
		p.bracketedPaste = enabled
	}}
}

// WithMouseReporting toggles whether a [Parser] dispatches SGR-1006
// bodies ("[<...") to the mouse decoder. Disabled, those bodies fall
// through to generic Escaped events instead. Enabled by default.
func WithMouseReporting(enabled bool) Option {
	return Option{parser: func(p *Parser) {
		p.mouseReporting = enabled
	}}
}

// WithMaxPending bounds the re-entrant pending buffer a [Parser] uses
// to hold a split escape sequence across chunk boundaries (§9 "Split
// escape-sequence reads"). The default is 32 bytes, comfortably above
// the longest table entry.
func WithMaxPending(n int) Option {
	return Option{parser: func(p *Parser) {
		if n > 0 {
			p.maxPending = n
		}
	}}
}

// WithPalette switches a [Display]'s color selection from 24-bit
// truecolor to quantized xterm-256 codes via [Translate] (§4.B
// "Color selection").
func WithPalette(enabled bool) Option {
	return Option{display: func(d *Display) {
		d.palette = enabled
	}}
}

// WithLogger installs l as the package-wide structured logger used
// for diagnostic tracing. It is equivalent to calling [SetLogger]
// directly; it exists as an Option so it composes with the
// constructors' functional-options call sites.
func WithLogger(l zerolog.Logger) Option {
	return Option{
		parser:  func(*Parser) { SetLogger(l) },
		display: func(*Display) { SetLogger(l) },
	}
}
