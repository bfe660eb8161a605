// Package reporter writes mdscan results as styled text or JSON.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdscan/internal/ui/pretty"
)

// IndexReport describes the line index of one input.
type IndexReport struct {
	Path    string              `json:"path"`
	Summary pretty.IndexSummary `json:"summary"`
	Lines   []pretty.LineRow    `json:"lines"`
}

// LinesReport is one materialized line range.
type LinesReport struct {
	Path       string `json:"path"`
	Begin      int    `json:"begin"`
	End        int    `json:"end"`
	Indent     int    `json:"indent"`
	KeepLastLF bool   `json:"keep_last_lf"`
	Text       string `json:"text"`
}

// Reporter formats and writes mdscan results.
type Reporter interface {
	// ReportIndex writes a line index report.
	ReportIndex(ctx context.Context, report *IndexReport) error

	// ReportLines writes a materialized line range.
	ReportLines(ctx context.Context, report *LinesReport) error

	// ReportCodePoints writes code point descriptions.
	ReportCodePoints(ctx context.Context, rows []pretty.CodePointRow) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
