// Package logging configures colored structured logging with tint.
//
// The interactive UI owns the terminal, so it logs to a file (or nowhere);
// one-shot commands log to stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New builds a tint logger writing to w at level. Color is dropped when
// noColor is set or w is not a terminal.
func New(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor || !isTerminal(w),
	}))
}

// Setup installs a logger writing to w (usually stderr) as the slog
// default and returns it.
func Setup(w io.Writer, level string, noColor bool) *slog.Logger {
	l := New(w, ParseLevel(level), noColor)
	slog.SetDefault(l)
	return l
}

// SetupFile logs to path, appending. An empty path discards everything.
// The returned close func is never nil.
func SetupFile(path, level string) (*slog.Logger, func() error, error) {
	if path == "" {
		l := slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(l)
		return l, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(f, ParseLevel(level), true)
	slog.SetDefault(l)
	return l, f.Close, nil
}

// ParseLevel maps debug/info/warn/error; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
