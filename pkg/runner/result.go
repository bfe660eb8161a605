package runner

import (
	"errors"

	"github.com/yaklabco/mdscan/pkg/fsutil"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// Changed reports whether the file was rewritten.
	Changed bool

	// Error is set if the file could not be processed.
	Error error
}

// Skipped reports whether the file changed on disk while it was processed
// and was therefore left alone.
func (o FileOutcome) Skipped() bool {
	return errors.Is(o.Error, fsutil.ErrModified)
}

// Stats captures aggregate counts for a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesModified   int
	FilesSkipped    int
	FilesErrored    int
}

// Result is the overall outcome of a run.
type Result struct {
	// Files holds one outcome per discovered file, ordered by path.
	// Files not reached before cancellation are absent.
	Files []FileOutcome

	Stats Stats
}

// Err joins the errors of all failed files, or returns nil.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			errs = append(errs, outcome.Error)
		}
	}
	return errors.Join(errs...)
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Skipped():
		r.Stats.FilesSkipped++
	case outcome.Error != nil:
		r.Stats.FilesErrored++
	default:
		r.Stats.FilesProcessed++
		if outcome.Changed {
			r.Stats.FilesModified++
		}
	}
}
