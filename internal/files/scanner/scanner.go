package scanner

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/vvka-141/charlint/internal/files/filesystem"
	"github.com/vvka-141/charlint/internal/files/sniff"
	"github.com/vvka-141/charlint/internal/rules"
	"github.com/vvka-141/charlint/pkg/charlint"
)

// initialLineBuffer is the starting capacity of the line scanner buffer.
// It grows on demand up to charlint.MaxLineBytes.
const initialLineBuffer = 64 * 1024

// Scanner discovers files in a directory tree and reports violations.
// A Scanner holds no per-scan state and may be reused for several scans.
type Scanner struct {
	fsProvider    filesystem.FileSystemProvider
	reporter      charlint.Reporter
	logger        charlint.Logger
	filenameRules []rules.Rule
	contentRules  []rules.Rule
}

// NewScanner creates a new scanner over the OS filesystem.
// Panics if reporter or logger is nil.
func NewScanner(reporter charlint.Reporter, logger charlint.Logger) *Scanner {
	return NewScannerWithFS(reporter, logger, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if any argument is nil.
func NewScannerWithFS(reporter charlint.Reporter, logger charlint.Logger, fsProvider filesystem.FileSystemProvider) *Scanner {
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider:    fsProvider,
		reporter:      reporter,
		logger:        logger,
		filenameRules: rules.Filename(),
		contentRules:  rules.Content(),
	}
}

// ScanDirectory recursively scans a directory and reports every violation.
//
// Parameters:
//   - targetPath: Root directory to scan
//
// Returns:
//   - charlint.ScanResult: Counters and the overall found flag
//   - error: The root could not be opened, or the reporter failed to write
func (s *Scanner) ScanDirectory(targetPath string) (charlint.ScanResult, error) {
	dir, err := s.fsProvider.Open(targetPath)
	if err != nil {
		return charlint.ScanResult{}, fmt.Errorf("failed to open directory: %w", err)
	}

	var result charlint.ScanResult

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			s.logger.Verbose("skipping entry: %v", err)
			return nil
		}

		// Directories are traversed but never checked
		if file.Info().IsDir() {
			return nil
		}

		return s.processFile(file, &result)
	})
	if err != nil {
		return result, err
	}

	s.logger.Info("scanned %d files, skipped %d, %d violations",
		result.FilesScanned, result.FilesSkipped, result.Violations)

	return result, nil
}

// processFile applies binary exclusion, the filename check and the content
// check to a single file. Only reporter failures are returned.
func (s *Scanner) processFile(file filesystem.File, result *charlint.ScanResult) error {
	relPath := filepath.ToSlash(file.RelativePath())

	if sniff.IsBinaryFile(file) {
		result.FilesSkipped++
		s.logger.Verbose("skipping binary file: %s", relPath)
		return nil
	}

	if rule, ok := rules.FirstMatch(s.filenameRules, file.Info().Name()); ok {
		err := s.report(result, charlint.Violation{
			Path:     relPath,
			Message:  charlint.FilenameCyrillicMessage,
			Rule:     rule.ID(),
			Severity: charlint.SeverityError,
		})
		if err != nil {
			return err
		}
	}

	return s.scanContent(file, relPath, result)
}

// scanContent checks every line of file. Undecodable bytes become U+FFFD.
// Open and read failures end the file quietly; violations already reported stand.
func (s *Scanner) scanContent(file filesystem.File, relPath string, result *charlint.ScanResult) error {
	rc, err := file.Open()
	if err != nil {
		result.FilesSkipped++
		s.logger.Verbose("skipping unreadable file %s: %v", relPath, err)
		return nil
	}
	defer rc.Close()

	result.FilesScanned++

	lines := bufio.NewScanner(transform.NewReader(rc, unicode.UTF8.NewDecoder()))
	lines.Buffer(make([]byte, 0, initialLineBuffer), charlint.MaxLineBytes)
	lines.Split(scanLines)

	lineNum := 0
	for lines.Scan() {
		lineNum++
		text := lines.Text()

		rule, ok := rules.FirstMatch(s.contentRules, text)
		if !ok {
			continue
		}

		err := s.report(result, charlint.Violation{
			Path:     relPath,
			Line:     lineNum,
			Message:  strings.TrimSpace(text),
			Rule:     rule.ID(),
			Severity: charlint.SeverityError,
		})
		if err != nil {
			return err
		}
	}

	if err := lines.Err(); err != nil {
		s.logger.Verbose("stopped reading %s after line %d: %v", relPath, lineNum, err)
	}

	return nil
}

func (s *Scanner) report(result *charlint.ScanResult, v charlint.Violation) error {
	s.logger.Verbose("%s:%d matched rule %s", v.Path, v.Line, v.Rule)
	if err := s.reporter.Report(v); err != nil {
		return fmt.Errorf("failed to report violation in %s: %w", v.Path, err)
	}
	result.Violations++
	result.Found = true
	return nil
}

// Verify Scanner implements the interface at compile time
var _ charlint.FileScanner = (*Scanner)(nil)
