package charlint

import (
	"errors"
)

// Sentinel errors for the failure classes of a lint run.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := cli.Execute()
//	if errors.Is(err, charlint.ErrViolationsFound) {
//	    // the tree has encoding hygiene violations
//	}
var (
	// ErrUsage indicates the command line was malformed (argument count, flags).
	ErrUsage = errors.New("invalid usage")

	// ErrInvalidTarget indicates the scan target does not exist or is not a directory.
	ErrInvalidTarget = errors.New("not a directory or does not exist")

	// ErrViolationsFound indicates the scan completed and reported at least one violation.
	ErrViolationsFound = errors.New("violations found")

	// ErrInvalidConfig indicates a LintConfig failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError returns the exit code for an error returned by the CLI.
// Returns ExitSuccess (0) for nil errors and ExitViolations (1) for a scan
// that found violations. Every other error means the scan never ran to
// completion and maps to ExitUsageError (2).
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrViolationsFound) {
		return ExitViolations
	}
	return ExitUsageError
}
