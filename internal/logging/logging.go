// Package logging configures the structured logger shared by the CLI and TUI.
//
// The TUI owns the terminal, so log output normally goes to a file in the
// config directory rather than stderr.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "rory-themes"

// New returns a logger writing to w at the given level name.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          Prefix,
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// Open returns a logger appending to the file at path. When mirror is non-nil
// every line is also written there (--verbose mirrors to stderr).
// The returned func closes the file. If the file cannot be opened, the
// logger writes to mirror, or is discarded when mirror is nil: the TUI owns
// the terminal then and stray stderr lines would corrupt its screen.
func Open(path, level string, mirror io.Writer) (*log.Logger, func() error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		if mirror == nil {
			return Discard(), func() error { return nil }
		}
		l := New(mirror, level)
		l.Warn("log file unavailable", "path", path, "err", err)
		return l, func() error { return nil }
	}

	var w io.Writer = f
	if mirror != nil {
		w = io.MultiWriter(f, mirror)
	}
	return New(w, level), f.Close
}

// SetLevel changes l's level by name, ignoring unknown names.
func SetLevel(l *log.Logger, level string) {
	if lvl, err := log.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
}
