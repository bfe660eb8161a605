package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/mdscan/internal/ui/pretty"
)

// TextReporter writes human-readable output styled with pretty.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	width := opts.TermWidth
	if width <= 0 {
		width = pretty.TerminalWidth(opts.Writer)
	}

	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		width:  width,
	}
}

// ReportIndex implements Reporter.
func (r *TextReporter) ReportIndex(_ context.Context, report *IndexReport) error {
	return r.write(func(w io.Writer) error {
		if r.opts.ShowTable {
			table := pretty.NewLineTableFormatter(r.styles, r.width).Format(report.Lines)
			if _, err := io.WriteString(w, table); err != nil {
				return err
			}
		}
		if r.opts.ShowSummary {
			if _, err := io.WriteString(w, r.styles.FormatIndexSummary(report.Summary)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReportLines implements Reporter. The text is written verbatim.
func (r *TextReporter) ReportLines(_ context.Context, report *LinesReport) error {
	return r.write(func(w io.Writer) error {
		_, err := io.WriteString(w, report.Text)
		return err
	})
}

// ReportCodePoints implements Reporter.
func (r *TextReporter) ReportCodePoints(_ context.Context, rows []pretty.CodePointRow) error {
	return r.write(func(w io.Writer) error {
		_, err := io.WriteString(w, r.styles.FormatCodePoints(rows))
		return err
	})
}

func (r *TextReporter) write(render func(w io.Writer) error) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	if err := render(bw); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
