package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, level), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// WithRun tags every entry with a short id so the lines of one
// invocation can be told apart in a shared log file
func (l *Logger) WithRun() *Logger {
	return &Logger{Logger: l.With("run", uuid.New().String()[:8])}
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path string, indent string) {
	l.Debug("config loaded",
		"path", path,
		"indent", indent)
}

// ClipboardRead logs the size of the clipboard snapshot
func (l *Logger) ClipboardRead(bytes, lines int) {
	l.Debug("clipboard read",
		"bytes", bytes,
		"lines", lines)
}

// ConversionCompleted logs the outcome of one conversion
func (l *Logger) ConversionCompleted(direction string, lines, marked, continuations int, duration time.Duration) {
	l.Info("conversion completed",
		"direction", direction,
		"lines", lines,
		"marked", marked,
		"continuations", continuations,
		"duration", duration.Round(time.Microsecond))
}

// ClipboardWritten logs a successful clipboard write
func (l *Logger) ClipboardWritten(bytes int) {
	l.Debug("clipboard written",
		"bytes", bytes)
}

// ClipboardError logs a clipboard access failure
func (l *Logger) ClipboardError(operation string, err error) {
	l.Error("clipboard error",
		"operation", operation,
		"error", err)
}

// DryRun logs a skipped clipboard write
func (l *Logger) DryRun(direction string, changed bool) {
	l.Info("dry run, clipboard left untouched",
		"direction", direction,
		"changed", changed)
}
