package source

// IsSpace reports whether c is the ASCII space.
// Tab is deliberately excluded: tabs are expanded by Normalize before any
// line is indexed, and indentation arithmetic counts spaces only.
func IsSpace(c byte) bool {
	return c == ' '
}

// IsBlank reports whether line has no content beyond its consumed indentation.
func (idx *Index) IsBlank(line int) bool {
	return idx.LineStart[line]+idx.LeadingIndent[line] >= idx.LineEnd[line]
}

// SkipBlankLines returns the first non-blank line at or after from,
// or LineMax if every remaining line is blank.
func (idx *Index) SkipBlankLines(from int) int {
	for ; from < idx.LineMax; from++ {
		if !idx.IsBlank(from) {
			break
		}
	}
	return from
}

// SkipSpaces returns the offset of the first non-space byte at or after pos,
// or len(s).
func SkipSpaces(s string, pos int) int {
	for ; pos < len(s); pos++ {
		if !IsSpace(s[pos]) {
			break
		}
	}
	return pos
}

// SkipChars returns the offset of the first byte at or after pos that is not c,
// or len(s).
func SkipChars(s string, pos int, c byte) int {
	for ; pos < len(s); pos++ {
		if s[pos] != c {
			break
		}
	}
	return pos
}

// SkipCharsBack walks backward from pos-1 over bytes equal to c and returns
// the offset just after the run. It never returns less than floor; if
// pos <= floor, pos is returned unchanged.
func SkipCharsBack(s string, pos int, c byte, floor int) int {
	if pos <= floor {
		return pos
	}

	for pos > floor {
		pos--
		if s[pos] != c {
			return pos + 1
		}
	}
	return pos
}
