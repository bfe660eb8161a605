package pretty

import (
	"fmt"
	"strconv"
	"strings"
)

// CodePointRow describes one code point for the codepoint report.
type CodePointRow struct {
	Input string   `json:"input"`
	Value int      `json:"value"`
	Valid bool     `json:"valid"`
	UTF16 []uint16 `json:"utf16"`
	Text  string   `json:"text"`
}

// FormatCodePoints renders one line per row:
//
//	U+1F600  valid    D83D DE00  "😀"
func (s *Styles) FormatCodePoints(rows []CodePointRow) string {
	var builder strings.Builder

	for _, row := range rows {
		status := s.Valid.Render(fmt.Sprintf("%-7s", "valid"))
		if !row.Valid {
			status = s.Invalid.Render(fmt.Sprintf("%-7s", "invalid"))
		}

		units := make([]string, len(row.UTF16))
		for i, unit := range row.UTF16 {
			units[i] = fmt.Sprintf("%04X", unit)
		}

		fmt.Fprintf(&builder, "%s  %s  %s  %s\n",
			s.Bold.Render(fmt.Sprintf("%-9s", FormatCodePoint(row.Value))),
			status,
			s.Units.Render(fmt.Sprintf("%-9s", strings.Join(units, " "))),
			s.Dim.Render(strconv.QuoteToGraphic(row.Text)),
		)
	}

	return builder.String()
}

// FormatCodePoint renders c in U+XXXX notation.
func FormatCodePoint(c int) string {
	if c < 0 {
		return fmt.Sprintf("-U+%04X", -c)
	}
	return fmt.Sprintf("U+%04X", c)
}
