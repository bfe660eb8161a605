package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Processor handles a single file and reports whether it changed it.
type Processor func(ctx context.Context, path string) (bool, error)

// Runner runs a Processor over discovered files with bounded concurrency.
type Runner struct {
	Process Processor
}

// New creates a Runner for process.
func New(process Processor) *Runner {
	return &Runner{Process: process}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Per-file failures are recorded in the result rather than returned; the
// returned error covers discovery failures and cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// Each worker writes only its own slot, so the outcomes keep path order.
	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			changed, err := r.Process(groupCtx, path)
			outcomes[i] = FileOutcome{Path: path, Changed: changed, Error: err}
			done[i] = true
			return nil
		})
	}

	waitErr := group.Wait()

	for i, outcome := range outcomes {
		if done[i] {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	if waitErr != nil {
		return result, fmt.Errorf("run cancelled: %w", waitErr)
	}

	return result, nil
}
