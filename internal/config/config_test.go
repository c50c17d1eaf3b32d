package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SpoolDir != "/var/mail" {
		t.Errorf("spool_dir = %q, want /var/mail", cfg.SpoolDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q, want info", cfg.LogLevel)
	}
	if cfg.LogFile != "" {
		t.Errorf("log_file = %q, want empty", cfg.LogFile)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "spool_dir: /tmp/spool\nexclude:\n  - root\n  - daemon\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SpoolDir != "/tmp/spool" {
		t.Errorf("spool_dir = %q, want /tmp/spool", cfg.SpoolDir)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "root" {
		t.Errorf("exclude = %v, want [root daemon]", cfg.Exclude)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.LogLevel)
	}
	// Keys absent from the file keep their defaults.
	if cfg.ExportDir == "" {
		t.Error("export_dir default should survive a partial file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "config.yaml")

	want := &Config{
		SpoolDir:  "/srv/mail",
		Exclude:   []string{"nobody"},
		ExportDir: "/tmp/exports",
		LogFile:   "/tmp/spoolview.log",
		LogLevel:  "warn",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.SpoolDir != want.SpoolDir ||
		got.ExportDir != want.ExportDir ||
		got.LogFile != want.LogFile ||
		got.LogLevel != want.LogLevel {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if len(got.Exclude) != 1 || got.Exclude[0] != "nobody" {
		t.Errorf("exclude = %v, want [nobody]", got.Exclude)
	}
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n::: not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for invalid YAML")
	}
}
