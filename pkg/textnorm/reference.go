package textnorm

import "fmt"

// InvalidPolicy selects what happens to a numeric reference whose code point
// fails IsValidCodePoint.
type InvalidPolicy string

const (
	// PolicyReplace substitutes U+FFFD.
	PolicyReplace InvalidPolicy = "replace"
	// PolicyKeep leaves the reference text as written.
	PolicyKeep InvalidPolicy = "keep"
)

// IsValid returns true if the policy is known.
func (p InvalidPolicy) IsValid() bool {
	switch p {
	case PolicyReplace, PolicyKeep:
		return true
	default:
		return false
	}
}

// ParseInvalidPolicy converts a config string to an InvalidPolicy.
// The empty string selects PolicyReplace.
func ParseInvalidPolicy(s string) (InvalidPolicy, error) {
	if s == "" {
		return PolicyReplace, nil
	}
	p := InvalidPolicy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown invalid code point policy %q (expected replace or keep)", s)
	}
	return p, nil
}

// maxRefDigits bounds the digits of a numeric reference.
const maxRefDigits = 8

// DecodeNumericReference parses a numeric character reference at the start
// of s: "&#" then 1-8 decimal digits, or 'x'/'X' and 1-8 hex digits, then
// ';'. It returns the code point, which is not validated, and the number of
// bytes consumed.
func DecodeNumericReference(s string) (int, int, bool) {
	if len(s) < len("&#0;") || s[0] != '&' || s[1] != '#' {
		return 0, 0, false
	}

	pos := 2
	hex := s[pos] == 'x' || s[pos] == 'X'
	if hex {
		pos++
	}

	start := pos
	code := 0
	for pos < len(s) && pos-start < maxRefDigits {
		digit, ok := digitValue(s[pos], hex)
		if !ok {
			break
		}
		if hex {
			code = code<<4 | digit
		} else {
			code = code*10 + digit
		}
		pos++
	}

	if pos == start || pos >= len(s) || s[pos] != ';' {
		return 0, 0, false
	}

	return code, pos + 1, true
}

// ResolveNumericReference decodes a numeric reference at the start of s and
// returns its text, substituting U+FFFD for invalid code points.
func ResolveNumericReference(s string) (string, int, bool) {
	code, n, ok := DecodeNumericReference(s)
	if !ok {
		return "", 0, false
	}
	if !IsValidCodePoint(code) {
		return replacementChar, n, true
	}
	return FromCodePoint(code), n, true
}

func digitValue(c byte, hex bool) (int, bool) {
	switch {
	case isDigit(c):
		return int(c - '0'), true
	case !hex:
		return 0, false
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
