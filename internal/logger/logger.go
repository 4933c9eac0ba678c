// Package logger wraps charmbracelet/log with site build events.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates an info-level logger writing to w.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "mdsite",
	})
	l.SetStyles(styles())
	return &Logger{Logger: l}
}

// styles highlights the prefix and page paths. Colors are dropped
// automatically when the output is not a terminal.
func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	s.Keys["source"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	s.Keys["dest"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	return s
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(io.Discard)
}

// ConfigLoaded logs the config file in use.
func (l *Logger) ConfigLoaded(path, engine string) {
	l.Debug("config loaded",
		"path", path,
		"engine", engine)
}

// BuildStarted logs the start of a site build.
func (l *Logger) BuildStarted(contentDir, outputDir string, pages, workers int) {
	l.Info("build started",
		"content", contentDir,
		"output", outputDir,
		"pages", pages,
		"workers", workers)
}

// BuildCompleted logs the end of a site build.
func (l *Logger) BuildCompleted(generated, skipped, failed int, duration time.Duration) {
	l.Info("build completed",
		"generated", generated,
		"skipped", skipped,
		"failed", failed,
		"duration", duration.Round(time.Millisecond))
}

// Copied logs a static file copied to the output.
func (l *Logger) Copied(path string) {
	l.Debug("static copied", "path", path)
}

// PageGenerated logs a page written to disk.
func (l *Logger) PageGenerated(source, dest string, size int, duration time.Duration) {
	l.Debug("page generated",
		"source", source,
		"dest", dest,
		"size", humanize.Bytes(uint64(size)), // #nosec G115 -- sizes are non-negative
		"duration", duration.Round(time.Microsecond))
}

// PageSkipped logs a page left out of the build.
func (l *Logger) PageSkipped(source, reason string) {
	l.Info("page skipped",
		"source", source,
		"reason", reason)
}
