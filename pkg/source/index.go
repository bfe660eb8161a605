// Package source provides the line index and scanning primitives that a
// line-oriented Markdown tokenizer is built on:
// - Index: per-line start, end and leading indentation over a source buffer
// - scanning helpers for spaces, character runs and blank lines
// - Lines: reassembly of a line range with indentation stripping
package source

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrInvalidIndex indicates an Index that violates its ordering invariant.
	ErrInvalidIndex = errors.New("invalid line index")

	// ErrLineRange indicates line numbers outside [0, LineMax].
	// Lines panics with an error wrapping it; such calls are caller bugs.
	ErrLineRange = errors.New("line range out of bounds")
)

// Index is an immutable per-line position table over a normalized source.
//
// For every line i below LineMax:
//
//	LineStart[i] <= LineStart[i]+LeadingIndent[i] <= LineEnd[i] <= LineStart[i+1]
//
// Indexes produced by Build carry one extra entry at LineMax whose start and
// end are len(Src), so LineStart[LineMax] is always addressable.
type Index struct {
	// Src is the full source text.
	Src string

	// LineStart is the byte offset of the first byte of each line.
	LineStart []int

	// LineEnd is the byte offset one past the last content byte of each
	// line, excluding the '\n' terminator.
	LineEnd []int

	// LeadingIndent is the number of leading spaces already consumed on
	// each line.
	LeadingIndent []int

	// LineMax is the exclusive upper bound on valid line numbers.
	LineMax int
}

// Build constructs the line index for src.
// src is expected to be normalized (see Normalize): '\n' is the only line
// terminator and tabs are already expanded. A trailing '\n' does not start
// an extra line.
func Build(src string) *Index {
	capacity := strings.Count(src, "\n") + 2
	idx := &Index{
		Src:           src,
		LineStart:     make([]int, 0, capacity),
		LineEnd:       make([]int, 0, capacity),
		LeadingIndent: make([]int, 0, capacity),
	}

	start := 0
	for start < len(src) {
		end := strings.IndexByte(src[start:], '\n')
		if end < 0 {
			end = len(src)
		} else {
			end += start
		}

		indent := SkipSpaces(src[:end], start) - start
		idx.push(start, end, indent)

		start = end + 1
	}

	// Sentinel entry so LineStart[LineMax] needs no bounds check.
	idx.push(len(src), len(src), 0)
	idx.LineMax = len(idx.LineStart) - 1

	return idx
}

func (idx *Index) push(start, end, indent int) {
	idx.LineStart = append(idx.LineStart, start)
	idx.LineEnd = append(idx.LineEnd, end)
	idx.LeadingIndent = append(idx.LeadingIndent, indent)
}

// Validate checks the ordering invariant of every entry.
// It returns an error wrapping ErrInvalidIndex describing the first violation.
func (idx *Index) Validate() error {
	n := len(idx.LineStart)
	if len(idx.LineEnd) != n || len(idx.LeadingIndent) != n {
		return fmt.Errorf("%w: table lengths differ (start %d, end %d, indent %d)",
			ErrInvalidIndex, n, len(idx.LineEnd), len(idx.LeadingIndent))
	}

	if idx.LineMax < 0 || idx.LineMax > n {
		return fmt.Errorf("%w: line max %d outside [0, %d]", ErrInvalidIndex, idx.LineMax, n)
	}

	for line := range n {
		start := idx.LineStart[line]
		content := start + idx.LeadingIndent[line]
		end := idx.LineEnd[line]

		switch {
		case start < 0 || idx.LeadingIndent[line] < 0:
			return fmt.Errorf("%w: line %d has negative offsets", ErrInvalidIndex, line)
		case content > end:
			return fmt.Errorf("%w: line %d indent %d runs past end %d",
				ErrInvalidIndex, line, idx.LeadingIndent[line], end)
		case end > len(idx.Src):
			return fmt.Errorf("%w: line %d ends at %d past source length %d",
				ErrInvalidIndex, line, end, len(idx.Src))
		case line+1 < n && end > idx.LineStart[line+1]:
			return fmt.Errorf("%w: line %d ends at %d after next line start %d",
				ErrInvalidIndex, line, end, idx.LineStart[line+1])
		}
	}

	return nil
}

// LineCount returns the number of lines, excluding the sentinel entry.
func (idx *Index) LineCount() int {
	return idx.LineMax
}

// LineContent returns the raw content of a 0-based line, excluding its
// terminator but including its indentation.
// Returns "" if the line number is out of range.
func (idx *Index) LineContent(line int) string {
	if line < 0 || line >= idx.LineMax {
		return ""
	}
	return idx.Src[idx.LineStart[line]:idx.LineEnd[line]]
}

// LineAt converts a byte offset to 1-based line and column numbers.
// An offset on a line terminator belongs to the line it terminates.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func (idx *Index) LineAt(offset int) (int, int) {
	if offset < 0 || offset > len(idx.Src) || idx.LineMax == 0 {
		return 0, 0
	}

	line := sort.Search(idx.LineMax, func(i int) bool {
		return idx.LineEnd[i] >= offset
	})

	// Past the last terminator: report the end of the last line.
	if line >= idx.LineMax {
		line = idx.LineMax - 1
	}

	if offset < idx.LineStart[line] {
		return 0, 0
	}

	return line + 1, offset - idx.LineStart[line] + 1
}
