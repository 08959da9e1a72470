// Package annotate writes violations as CI workflow annotation lines:
//
//	::error file=<path>::<message>
//	::error file=<path>,line=<n>::<message>
//	::notice:: No Cyrillic or emoji found
package annotate

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vvka-141/charlint/pkg/charlint"
)

// Writer implements charlint.Reporter by printing annotation lines.
// Safe for concurrent use by multiple goroutines.
type Writer struct {
	out io.Writer
	mu  sync.Mutex
}

// NewWriter creates a Writer that prints to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Report prints a single error annotation for v.
func (w *Writer) Report(v charlint.Violation) error {
	return w.println(FormatViolation(v))
}

// Clean prints the notice for a scan without violations.
func (w *Writer) Clean() error {
	return w.println(FormatNotice(charlint.CleanNoticeMessage))
}

func (w *Writer) println(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintln(w.out, line)
	return err
}

// FormatViolation renders v as an annotation line without the trailing newline.
// Line text is trimmed and has every % doubled; filename messages are fixed
// strings and are written as-is.
func FormatViolation(v charlint.Violation) string {
	level := v.Severity
	if level == "" {
		level = charlint.SeverityError
	}
	if v.IsFilename() {
		return fmt.Sprintf("::%s file=%s::%s", level, v.Path, v.Message)
	}
	return fmt.Sprintf("::%s file=%s,line=%d::%s", level, v.Path, v.Line, EscapeMessage(v.Message))
}

// FormatNotice renders a notice annotation.
func FormatNotice(message string) string {
	return "::" + string(charlint.SeverityNotice) + "::" + message
}

// EscapeMessage trims surrounding whitespace and doubles every % so the
// payload survives printf-style handling downstream.
func EscapeMessage(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "%", "%%")
}

var _ charlint.Reporter = (*Writer)(nil)
