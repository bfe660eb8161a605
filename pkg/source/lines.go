package source

import (
	"fmt"
	"strings"
)

// Lines returns the source text of lines [begin, end).
//
// At most indent leading spaces are stripped from each line, and never more
// than the line's LeadingIndent. Lines are joined by their own '\n'
// terminators. The terminator of the last line is included only when
// keepLastLF is set; for a single line this extends the slice to the start
// of the next line.
//
// An empty or inverted range returns "". Line numbers outside [0, LineMax]
// or a negative indent panic with an error wrapping ErrLineRange.
func (idx *Index) Lines(begin, end, indent int, keepLastLF bool) string {
	if begin >= end {
		return ""
	}

	if begin < 0 || end > idx.LineMax || indent < 0 {
		panic(fmt.Errorf("%w: lines [%d, %d) indent %d with line max %d",
			ErrLineRange, begin, end, indent, idx.LineMax))
	}

	// Single line: slice directly, no builder.
	if begin+1 == end {
		first := idx.contentStart(begin, indent)
		last := idx.LineEnd[begin]
		if keepLastLF {
			last = idx.startOrEOF(end)
		}
		return idx.Src[first:last]
	}

	var buf strings.Builder
	buf.Grow(idx.startOrEOF(end) - idx.LineStart[begin])

	for line := begin; line < end; line++ {
		first := idx.contentStart(line, indent)
		last := idx.LineEnd[line]
		if line+1 < end || keepLastLF {
			last = min(last+1, len(idx.Src))
		}
		buf.WriteString(idx.Src[first:last])
	}

	return buf.String()
}

// contentStart is the offset of line after stripping up to indent spaces.
func (idx *Index) contentStart(line, indent int) int {
	return idx.LineStart[line] + min(idx.LeadingIndent[line], indent)
}

// startOrEOF is LineStart[line], or len(Src) for indexes without a sentinel.
func (idx *Index) startOrEOF(line int) int {
	if line < len(idx.LineStart) {
		return idx.LineStart[line]
	}
	return len(idx.Src)
}
