package pretty

import (
	"fmt"
	"strings"
)

// IndexSummary aggregates a line index for the one-line summary.
type IndexSummary struct {
	Path      string `json:"path"`
	Bytes     int    `json:"bytes"`
	Lines     int    `json:"lines"`
	Blank     int    `json:"blank"`
	MaxIndent int    `json:"max_indent"`
}

// SummarizeRows computes an IndexSummary from table rows.
func SummarizeRows(path string, size int, rows []LineRow) IndexSummary {
	summary := IndexSummary{Path: path, Bytes: size, Lines: len(rows)}
	for _, row := range rows {
		if row.Blank {
			summary.Blank++
		}
		summary.MaxIndent = max(summary.MaxIndent, row.Indent)
	}
	return summary
}

// FormatIndexSummary formats a summary as a single line.
// Example: "README.md: 12 lines (3 blank), 340 bytes, max indent 4".
func (s *Styles) FormatIndexSummary(summary IndexSummary) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%s (%d blank)",
		plural(summary.Lines, "line", "lines"), summary.Blank))
	parts = append(parts, plural(summary.Bytes, "byte", "bytes"))
	parts = append(parts, fmt.Sprintf("max indent %d", summary.MaxIndent))

	title := summary.Path
	if title == "" {
		title = "<stdin>"
	}

	return s.SummaryTitle.Render(title+":") + " " + s.SummaryValue.Render(strings.Join(parts, ", ")) + "\n"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
