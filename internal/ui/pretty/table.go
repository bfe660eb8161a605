package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/yaklabco/mdscan/pkg/source"
)

// Table formatting constants.
const (
	tablePadding      = 2
	minPreviewWidth   = 12
	indentMarker      = "·"
	blankMarker       = "~"
	previewTail       = "…"
	heavySeparator    = "="
	headerLine        = "LINE"
	headerStart       = "START"
	headerEnd         = "END"
	headerIndent      = "IND"
	headerContent     = "CONTENT"
	blankColumnWidth  = 1
	tableColumnCount  = 6
	previewLeadMargin = 1
)

// LineRow is one line of a source.Index as shown by the table.
type LineRow struct {
	Line    int    `json:"line"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Indent  int    `json:"indent"`
	Blank   bool   `json:"blank"`
	Content string `json:"content"`
}

// RowsFromIndex returns one row per line of idx, excluding the sentinel.
func RowsFromIndex(idx *source.Index) []LineRow {
	rows := make([]LineRow, 0, idx.LineCount())
	for line := range idx.LineCount() {
		rows = append(rows, LineRow{
			Line:    line,
			Start:   idx.LineStart[line],
			End:     idx.LineEnd[line],
			Indent:  idx.LeadingIndent[line],
			Blank:   idx.IsBlank(line),
			Content: idx.LineContent(line),
		})
	}
	return rows
}

// LineTableFormatter formats line rows as a styled, width-bounded table.
type LineTableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewLineTableFormatter creates a formatter that keeps rows within termWidth
// columns. A non-positive width means DefaultTermWidth.
func NewLineTableFormatter(styles *Styles, termWidth int) *LineTableFormatter {
	if termWidth <= 0 {
		termWidth = DefaultTermWidth
	}
	return &LineTableFormatter{styles: styles, termWidth: termWidth}
}

type lineColumnWidths struct {
	line, start, end, indent, preview int
}

// Format renders rows. Leading indentation is drawn with a middle dot and
// content past the preview column is cut with an ellipsis.
func (t *LineTableFormatter) Format(rows []LineRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.columnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s = indent space  %s = blank line", indentMarker, blankMarker)))
	builder.WriteString("\n")

	return builder.String()
}

func (t *LineTableFormatter) columnWidths(rows []LineRow) lineColumnWidths {
	widths := lineColumnWidths{
		line:   len(headerLine),
		start:  len(headerStart),
		end:    len(headerEnd),
		indent: len(headerIndent),
	}

	for _, row := range rows {
		widths.line = max(widths.line, digits(row.Line))
		widths.start = max(widths.start, digits(row.Start))
		widths.end = max(widths.end, digits(row.End))
		widths.indent = max(widths.indent, digits(row.Indent))
	}

	fixed := previewLeadMargin + widths.line + widths.start + widths.end + widths.indent +
		blankColumnWidth + tablePadding*(tableColumnCount-1)
	widths.preview = max(minPreviewWidth, t.termWidth-fixed)

	return widths
}

func (t *LineTableFormatter) formatHeader(widths lineColumnWidths) string {
	header := fmt.Sprintf(" %*s  %*s  %*s  %*s  %s  %s",
		widths.line, headerLine,
		widths.start, headerStart,
		widths.end, headerEnd,
		widths.indent, headerIndent,
		strings.Repeat(" ", blankColumnWidth),
		headerContent,
	)
	return t.styles.TableHeader.Render(header)
}

func (t *LineTableFormatter) formatSeparator(widths lineColumnWidths) string {
	total := previewLeadMargin + widths.line + widths.start + widths.end + widths.indent +
		blankColumnWidth + widths.preview + tablePadding*(tableColumnCount-1)
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, min(total, t.termWidth)))
}

func (t *LineTableFormatter) formatRow(row LineRow, widths lineColumnWidths) string {
	blank := " "
	if row.Blank {
		blank = t.styles.BlankRow.Render(blankMarker)
	}

	cells := []string{
		t.styles.LineNumber.Render(padLeft(strconv.Itoa(row.Line), widths.line)),
		t.styles.Offset.Render(padLeft(strconv.Itoa(row.Start), widths.start)),
		t.styles.Offset.Render(padLeft(strconv.Itoa(row.End), widths.end)),
		t.styles.Indent.Render(padLeft(strconv.Itoa(row.Indent), widths.indent)),
		blank,
		t.preview(row, widths.preview),
	}

	return " " + strings.Join(cells, strings.Repeat(" ", tablePadding))
}

// preview renders the line content with its indentation made visible,
// truncated to width display columns.
func (t *LineTableFormatter) preview(row LineRow, width int) string {
	indent := min(row.Indent, len(row.Content))
	plain := strings.Repeat(indentMarker, indent) + row.Content[indent:]
	cut := truncate.StringWithTail(plain, uint(width), previewTail) //nolint:gosec // width >= minPreviewWidth

	marked := 0
	for marked < indent && strings.HasPrefix(cut[marked*len(indentMarker):], indentMarker) {
		marked++
	}

	lead, rest := cut[:marked*len(indentMarker)], cut[marked*len(indentMarker):]
	if lead != "" {
		lead = t.styles.Whitespace.Render(lead)
	}
	if row.Blank && rest != "" {
		rest = t.styles.BlankRow.Render(rest)
	}

	return lead + rest
}

// VisibleWidth returns the display width of s ignoring ANSI sequences.
func VisibleWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

func padLeft(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func digits(n int) int {
	return len(strconv.Itoa(n))
}
