package textnorm

import (
	"strings"

	"github.com/yuin/goldmark/util"
)

// maxEntityName is the longest entity name ReplaceEntities recognizes.
const maxEntityName = 32

// LookupEntity returns the replacement text of a named character reference.
// name excludes the leading '&' and trailing ';' and is case-sensitive.
func LookupEntity(name string) (string, bool) {
	entity, ok := util.LookUpHTML5EntityByName(name)
	if !ok {
		return "", false
	}
	return string(entity.Characters), true
}

// ReplaceEntities resolves named character references such as &amp; and
// &copy;. A reference is '&', an ASCII letter, 1 to 31 ASCII letters or
// digits, and ';'. Unknown names are left as written.
func ReplaceEntities(s string) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}
	return replaceAll(s, func(s string, pos int) (string, int, bool) {
		name, end, ok := scanEntityName(s, pos)
		if !ok {
			return "", 0, false
		}
		repl, found := LookupEntity(name)
		return repl, end, found
	})
}

// ReplaceReferences resolves named and numeric character references in one
// pass. Numeric references to invalid code points follow policy.
func ReplaceReferences(s string, policy InvalidPolicy) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}
	return replaceAll(s, func(s string, pos int) (string, int, bool) {
		return resolveReference(s, pos, policy)
	})
}

// resolveReference resolves the reference starting at s[pos] == '&'.
// It returns the replacement and the offset just past the reference.
func resolveReference(s string, pos int, policy InvalidPolicy) (string, int, bool) {
	if cp, n, ok := DecodeNumericReference(s[pos:]); ok {
		if IsValidCodePoint(cp) {
			return FromCodePoint(cp), pos + n, true
		}
		if policy == PolicyKeep {
			return "", 0, false
		}
		return replacementChar, pos + n, true
	}

	name, end, ok := scanEntityName(s, pos)
	if !ok {
		return "", 0, false
	}
	repl, found := LookupEntity(name)
	return repl, end, found
}

// scanEntityName matches &name; at s[pos] and returns the name and the
// offset after ';'.
func scanEntityName(s string, pos int) (string, int, bool) {
	start := pos + 1
	if start >= len(s) || !isLetter(s[start]) {
		return "", 0, false
	}

	end := start + 1
	for end < len(s) && end-start < maxEntityName && isLetterDigit(s[end]) {
		end++
	}

	if end-start < 2 || end >= len(s) || s[end] != ';' {
		return "", 0, false
	}

	return s[start:end], end + 1, true
}

// replaceAll scans s for '&' and splices in every replacement resolve finds.
// s is returned unchanged when nothing resolves.
func replaceAll(s string, resolve func(s string, pos int) (string, int, bool)) string {
	var buf strings.Builder

	last := 0
	for pos := 0; pos < len(s); {
		amp := strings.IndexByte(s[pos:], '&')
		if amp < 0 {
			break
		}
		pos += amp

		repl, end, ok := resolve(s, pos)
		if !ok {
			pos++
			continue
		}

		if last == 0 {
			buf.Grow(len(s))
		}
		buf.WriteString(s[last:pos])
		buf.WriteString(repl)
		pos, last = end, end
	}

	if last == 0 {
		return s
	}
	buf.WriteString(s[last:])

	return buf.String()
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetterDigit(c byte) bool {
	return isLetter(c) || isDigit(c)
}
