package charlint

// FileScanner defines the interface for walking a directory tree and
// reporting encoding hygiene violations.
type FileScanner interface {
	// ScanDirectory recursively scans a directory, sending each violation to
	// the scanner's Reporter, and returns the aggregated result.
	ScanDirectory(targetPath string) (ScanResult, error)
}

// Reporter receives violations as they are found.
type Reporter interface {
	// Report emits a single violation.
	Report(v Violation) error

	// Clean emits the summary notice for a scan with no violations.
	Clean() error
}
