package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/vvka-141/charlint/pkg/charlint"
)

// ConsoleLogger writes human-readable log lines to stderr.
// Without verbose mode only errors and warnings are shown.
type ConsoleLogger struct {
	logger zerolog.Logger
}

// NewConsoleLogger creates a ConsoleLogger writing to stderr.
// If verbose is true, Verbose() and Info() calls will produce output.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWithWriter(os.Stderr, verbose)
}

// NewConsoleLoggerWithWriter creates a ConsoleLogger writing to out.
// Colour is enabled only when out is a terminal.
func NewConsoleLoggerWithWriter(out io.Writer, verbose bool) *ConsoleLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{
		Out:          zerolog.SyncWriter(out),
		NoColor:      !isTerminal(out),
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return &ConsoleLogger{
		logger: zerolog.New(cw).Level(level),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	logf(l.logger.Debug(), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	logf(l.logger.Info(), format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	logf(l.logger.Error(), format, args)
}

func logf(e *zerolog.Event, format string, args []interface{}) {
	if len(args) > 0 {
		e.Msgf(format, args...)
		return
	}
	e.Msg(format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var _ charlint.Logger = (*ConsoleLogger)(nil)
