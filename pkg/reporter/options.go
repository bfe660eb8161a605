package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// TermWidth bounds table rows. Zero means detect from Writer.
	TermWidth int

	// ShowTable renders the per-line table for index reports.
	ShowTable bool

	// ShowSummary renders the one-line summary for index reports.
	ShowSummary bool

	// Compact disables JSON indentation.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowTable:   true,
		ShowSummary: true,
	}
}
