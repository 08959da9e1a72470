package charlint

// Exit codes reported by the lint command.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: Scan completed and found violations
//   - 2: CLI usage error, invalid scan target, or internal failure
const (
	ExitSuccess    = 0 // Scan completed, zero violations
	ExitViolations = 1 // Scan completed, one or more violations
	ExitUsageError = 2 // Wrong argument count, unknown flag, or target is not a directory
	ExitPanic      = 2 // Unrecovered panic in the scan
)

const (
	// SniffSampleSize is the number of leading bytes inspected when deciding
	// whether a file is binary.
	SniffSampleSize = 1024

	// SniffNonTextThreshold is the fraction of non-text bytes in the sample
	// above which a file is considered binary.
	SniffNonTextThreshold = 0.30

	// MaxLineBytes bounds a single line read during content scanning.
	// Lines longer than this end the scan of that file.
	MaxLineBytes = 16 * 1024 * 1024

	// FilenameCyrillicMessage is the annotation payload for filename violations.
	FilenameCyrillicMessage = "filename contains Cyrillic"

	// CleanNoticeMessage is the annotation payload printed when nothing was found.
	CleanNoticeMessage = " No Cyrillic or emoji found"

	// TargetPlaceholder names the positional argument in usage output.
	TargetPlaceholder = "<directory-to-scan>"
)
