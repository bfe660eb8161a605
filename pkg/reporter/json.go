package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdscan/internal/ui/pretty"
)

// jsonSchemaVersion is reported in every JSON document.
const jsonSchemaVersion = "1.0.0"

// JSONIndex is the JSON document for an index report.
type JSONIndex struct {
	Version string `json:"version"`
	*IndexReport
}

// JSONLines is the JSON document for a lines report.
type JSONLines struct {
	Version string `json:"version"`
	*LinesReport
}

// JSONCodePoints is the JSON document for a code point report.
type JSONCodePoints struct {
	Version    string                `json:"version"`
	CodePoints []pretty.CodePointRow `json:"code_points"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// ReportIndex implements Reporter.
func (r *JSONReporter) ReportIndex(_ context.Context, report *IndexReport) error {
	if report.Lines == nil {
		report.Lines = []pretty.LineRow{}
	}
	return r.encode(JSONIndex{Version: jsonSchemaVersion, IndexReport: report})
}

// ReportLines implements Reporter.
func (r *JSONReporter) ReportLines(_ context.Context, report *LinesReport) error {
	return r.encode(JSONLines{Version: jsonSchemaVersion, LinesReport: report})
}

// ReportCodePoints implements Reporter.
func (r *JSONReporter) ReportCodePoints(_ context.Context, rows []pretty.CodePointRow) error {
	if rows == nil {
		rows = []pretty.CodePointRow{}
	}
	return r.encode(JSONCodePoints{Version: jsonSchemaVersion, CodePoints: rows})
}

func (r *JSONReporter) encode(doc any) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
