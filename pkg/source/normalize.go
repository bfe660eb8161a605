package source

import "strings"

// DefaultTabWidth is the tab stop used when Normalize is given a
// non-positive width.
const DefaultTabWidth = 4

// replacementChar substitutes NUL bytes.
const replacementChar = "\uFFFD"

// Normalize prepares raw input for Build:
// CRLF and lone CR become LF, NUL becomes U+FFFD, and tabs are expanded with
// spaces to the next multiple of tabWidth. Columns count runes since the
// last line break. Input needing none of this is returned as-is.
func Normalize(src string, tabWidth int) string {
	if strings.IndexAny(src, "\r\t\x00") < 0 {
		return src
	}

	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	var buf strings.Builder
	buf.Grow(len(src))

	col := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			buf.WriteByte('\n')
			col = 0
		case '\n':
			buf.WriteByte('\n')
			col = 0
		case '\t':
			pad := tabWidth - col%tabWidth
			buf.WriteString(strings.Repeat(" ", pad))
			col += pad
		case 0:
			buf.WriteString(replacementChar)
			col++
		default:
			buf.WriteByte(c)
			// UTF-8 continuation bytes do not start a column.
			if c&0xC0 != 0x80 {
				col++
			}
		}
	}

	return buf.String()
}
