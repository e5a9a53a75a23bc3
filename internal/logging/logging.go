// Package logging builds the leveled loggers used by the engine, the
// terminal host and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// ImportantLevel sits between info and warn. It marks milestones worth
// keeping when the level is raised above info for noisy sessions.
const ImportantLevel = log.InfoLevel + 2

// Options configures a logger.
type Options struct {
	Prefix string
	Level  string // debug, info, important, warn, error
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          opts.Prefix,
	})

	styles := log.DefaultStyles()
	styles.Levels[ImportantLevel] = lipgloss.NewStyle().
		SetString("IMPT").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("86"))
	l.SetStyles(styles)

	SetLevel(l, opts.Level)
	return l
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, Options{Level: "error"})
}

// OpenFile creates a logger appending to path, creating parent
// directories. The returned closer must be closed by the caller.
func OpenFile(path string, opts Options) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}

	return New(f, opts), f, nil
}

// ParseLevel converts a level name to a log level.
// Unknown names fall back to info.
func ParseLevel(name string) log.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "important" {
		return ImportantLevel
	}

	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SetLevel changes the level of l by name.
func SetLevel(l *log.Logger, name string) {
	l.SetLevel(ParseLevel(name))
}

// Important logs msg at ImportantLevel.
func Important(l *log.Logger, msg string, keyvals ...any) {
	l.Log(ImportantLevel, msg, keyvals...)
}
