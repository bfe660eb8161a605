package textnorm

// MaxCodePoint is the largest Unicode code point.
const MaxCodePoint = 0x10FFFF

// replacementChar stands in for references to invalid code points.
const replacementChar = "\uFFFD"

const (
	maxBMP        = 0xFFFF
	supplementary = 0x10000
	surrHigh      = 0xD800
	surrLow       = 0xDC00
	surrMask      = 0x3FF
	surrShift     = 10
)

type codePointRange struct {
	lo, hi int
}

// disallowedRanges are the inclusive ranges IsValidCodePoint rejects.
//
//nolint:gochecknoglobals // Read-only lookup table.
var disallowedRanges = [...]codePointRange{
	{0xD800, 0xDFFF}, // surrogates
	{0xF5, 0xFF},     // never valid as UTF-8 lead bytes
	{0xC0, 0xC1},     // overlong UTF-8 lead bytes
	{0xFDD0, 0xFDEF}, // non-characters
	{0x00, 0x1F},     // C0 controls
	{0x7F, 0x9F},     // DEL and C1 controls
}

// IsValidCodePoint reports whether a numeric character reference to c may be
// emitted. It rejects surrogates, controls, non-characters (including the
// last two code points of every plane), the byte values F5-FF and C0-C1, and
// anything outside [0, MaxCodePoint].
func IsValidCodePoint(c int) bool {
	if c < 0 || c > MaxCodePoint {
		return false
	}

	for _, r := range disallowedRanges {
		if c >= r.lo && c <= r.hi {
			return false
		}
	}

	if low := c & maxBMP; low == 0xFFFF || low == 0xFFFE {
		return false
	}

	return true
}

// EncodeUTF16 returns the UTF-16 code units of c, composing a surrogate pair
// for code points above the Basic Multilingual Plane. c is not validated.
func EncodeUTF16(c int) []uint16 {
	if c > maxBMP {
		c -= supplementary
		return []uint16{
			uint16(surrHigh + (c >> surrShift)),
			uint16(surrLow + (c & surrMask)),
		}
	}
	return []uint16{uint16(c)}
}

// FromCodePoint returns the text for a validated code point.
// Output is UTF-8; anything that is not a scalar value becomes U+FFFD.
func FromCodePoint(c int) string {
	if c < 0 || c > MaxCodePoint {
		return replacementChar
	}
	return string(rune(c))
}
