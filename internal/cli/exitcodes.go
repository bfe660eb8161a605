package cli

import (
	"errors"

	"github.com/yaklabco/mdscan/internal/configloader"
	"github.com/yaklabco/mdscan/pkg/fsutil"
)

// Exit codes for mdscan.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a generic failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrInvalidUsage marks errors caused by bad arguments or flags.
var ErrInvalidUsage = errors.New("invalid usage")

// ErrConfig marks errors loading or validating configuration.
var ErrConfig = errors.New("configuration error")

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError

	switch {
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrModified):
		return ExitIOError
	default:
		return ExitFailure
	}
}
