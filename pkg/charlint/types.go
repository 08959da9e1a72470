package charlint

import (
	"errors"
	"fmt"
)

// LintConfig contains all parameters for a single lint run.
type LintConfig struct {
	// TargetPath is the root directory to scan
	TargetPath string

	// Verbose enables debug logging to stderr
	Verbose bool
}

// Validate checks if the LintConfig has all required fields.
// It returns a multi-error if multiple validation failures occur.
func (c *LintConfig) Validate() error {
	var errs []error

	if c.TargetPath == "" {
		errs = append(errs, fmt.Errorf("TargetPath is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Severity is the annotation level of a violation.
type Severity string

const (
	SeverityError  Severity = "error"
	SeverityNotice Severity = "notice"
)

// RuleID identifies which MatchRule produced a violation.
type RuleID string

const (
	RuleCyrillic     RuleID = "cyrillic"
	RulePictographic RuleID = "extended-pictographic"
	RuleEmoticon     RuleID = "emoticon"
)

// Violation is a single finding reported by the scanner.
// All paths use forward slashes, relative to the scan target.
type Violation struct {
	Path     string   // Relative path: "docs/readme.md"
	Line     int      // 1-based line number, 0 for filename violations
	Message  string   // Trimmed line text, or a reason string for filename violations
	Rule     RuleID   // Rule that matched first
	Severity Severity // Always SeverityError for now
}

// IsFilename reports whether the violation refers to the filename rather than a line.
func (v Violation) IsFilename() bool {
	return v.Line == 0
}

// ScanResult summarises a completed scan. Violations themselves are streamed
// to a Reporter and not retained here.
type ScanResult struct {
	FilesScanned int  // Text files whose content was checked
	FilesSkipped int  // Binary or unreadable files
	Violations   int  // Number of violations reported
	Found        bool // True if at least one violation was reported
}
