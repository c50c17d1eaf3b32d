// Package logging builds the application logger. The TUI owns the
// terminal while it runs, so logs go to a file or nowhere; never to
// stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New returns a logger writing JSON records to file, creating parent
// directories as needed, and a cleanup func closing it. With an empty
// file name the logger discards everything and cleanup is a no-op.
func New(file, level string) (*slog.Logger, func() error, error) {
	cleanup := func() error { return nil }

	if file == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), cleanup, nil
	}

	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, cleanup, fmt.Errorf("creating log directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, cleanup, fmt.Errorf("opening log file %s: %w", file, err)
	}

	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return slog.New(slog.NewJSONHandler(f, opts)), f.Close, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
