package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// UnicodeForm selects an optional Unicode normalization form.
type UnicodeForm string

const (
	// FormNone leaves text as written.
	FormNone UnicodeForm = "none"
	// FormNFC applies canonical composition.
	FormNFC UnicodeForm = "nfc"
)

// IsValid returns true if the form is known.
func (f UnicodeForm) IsValid() bool {
	switch f {
	case FormNone, FormNFC, "":
		return true
	default:
		return false
	}
}

// Options controls a Normalizer.
type Options struct {
	// Unescape removes backslash escapes.
	Unescape bool

	// References resolves named and numeric character references.
	References bool

	// InvalidCodePoints decides the fate of numeric references to invalid
	// code points. Empty means PolicyReplace.
	InvalidCodePoints InvalidPolicy

	// Form is applied after unescaping and reference resolution.
	Form UnicodeForm

	// EscapeHTML escapes the result for HTML output.
	EscapeHTML bool
}

// DefaultOptions returns the text path applied to ordinary inline text.
func DefaultOptions() Options {
	return Options{
		Unescape:          true,
		References:        true,
		InvalidCodePoints: PolicyReplace,
		Form:              FormNone,
		EscapeHTML:        true,
	}
}

// Normalizer applies a fixed sequence of text transforms.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	opts Options
}

// New creates a Normalizer.
func New(opts Options) *Normalizer {
	if opts.InvalidCodePoints == "" {
		opts.InvalidCodePoints = PolicyReplace
	}
	return &Normalizer{opts: opts}
}

// Options returns the options the Normalizer was built with.
func (n *Normalizer) Options() Options {
	return n.opts
}

// Normalize runs s through the configured transforms.
//
// When both Unescape and References are enabled they run as a single pass,
// so an escaped ampersand such as \&amp; stays literal text instead of
// starting a reference.
func (n *Normalizer) Normalize(s string) string {
	switch {
	case n.opts.Unescape && n.opts.References:
		s = unescapeAndResolve(s, n.opts.InvalidCodePoints)
	case n.opts.Unescape:
		s = UnescapeMarkdown(s)
	case n.opts.References:
		s = ReplaceReferences(s, n.opts.InvalidCodePoints)
	}

	if n.opts.Form == FormNFC {
		s = norm.NFC.String(s)
	}

	if n.opts.EscapeHTML {
		s = EscapeHTML(s)
	}

	return s
}

// unescapeAndResolve removes backslash escapes and resolves references in
// one left-to-right pass.
func unescapeAndResolve(s string, policy InvalidPolicy) string {
	if strings.IndexAny(s, `\&`) < 0 {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s))

	last := 0
	for pos := 0; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			if pos+1 < len(s) && IsEscapable(s[pos+1]) {
				buf.WriteString(s[last:pos])
				buf.WriteByte(s[pos+1])
				pos++
				last = pos + 1
			}
		case '&':
			repl, end, ok := resolveReference(s, pos, policy)
			if !ok {
				continue
			}
			buf.WriteString(s[last:pos])
			buf.WriteString(repl)
			pos = end - 1
			last = end
		}
	}
	buf.WriteString(s[last:])

	return buf.String()
}
