package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDiscardsWithoutFile(t *testing.T) {
	logger, cleanup, err := New("", "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cleanup()

	// Must not panic and must not touch stdout/stderr.
	logger.Info("dropped")
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "spoolview.log")

	logger, cleanup, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("hello", "user", "alice")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("log file %q does not contain the JSON record", data)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spoolview.log")

	logger, cleanup, err := New(path, "error")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("filtered out")
	logger.Error("kept")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "filtered out") {
		t.Error("info record should be filtered at error level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("error record missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
