package cli

import (
	"errors"

	"github.com/yaklabco/gohilite/pkg/fsutil"
	"github.com/yaklabco/gohilite/pkg/runner"
)

// Exit codes for gohilite.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates a scan completed but found unmatched brackets.
	ExitIssuesFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors mapped to exit codes.
var (
	// ErrIssuesFound is returned when a scan finds unmatched brackets.
	ErrIssuesFound = errors.New("unmatched brackets found")

	// ErrUnknownLanguage is returned when --language names no profile or
	// a file's language cannot be detected.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrInvalidUsage is returned for bad flag combinations.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("failed to load configuration")

	// ErrScanFailed is returned when some files could not be read.
	ErrScanFailed = errors.New("some files could not be scanned")
)

// ExitCodeFromResult determines the exit code of a scan.
// With strict set, unmatched brackets fail the run.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitIOError
	}

	if strict && result.HasIssues() {
		return ExitIssuesFound
	}

	return ExitSuccess
}

// ExitCodeFromError maps a command error to an exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssuesFound
	case errors.Is(err, ErrUnknownLanguage), errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrScanFailed),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrTooLarge):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// errorForExitCode converts a non-zero scan exit code into its sentinel.
func errorForExitCode(code int) error {
	switch code {
	case ExitIssuesFound:
		return ErrIssuesFound
	case ExitIOError:
		return ErrScanFailed
	default:
		return nil
	}
}
