package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/blockwrap/internal/configloader"
	"github.com/yaklabco/blockwrap/pkg/fsutil"
	"github.com/yaklabco/blockwrap/pkg/source"
	"github.com/yaklabco/blockwrap/pkg/wrap"
)

// Exit codes for blockwrap.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrUsage marks bad arguments or flag values.
var ErrUsage = errors.New("invalid usage")

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage), errors.Is(err, source.ErrInteractiveStdin):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig), errors.Is(err, wrap.ErrInvalidConfiguration):
		return ExitConfigError
	case errors.As(err, &pathErr),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrNotDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
