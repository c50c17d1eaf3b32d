package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempMailbox writes content as a mailbox file named user inside a
// fresh temp spool directory and returns its path. The directory is
// removed when the test completes.
func TempMailbox(t *testing.T, user, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), user)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing test mailbox: %v", err)
	}
	return path
}

// TempSpool creates a temp spool directory holding one mailbox file
// per entry of boxes and returns the directory path.
func TempSpool(t *testing.T, boxes map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for user, content := range boxes {
		if err := os.WriteFile(filepath.Join(dir, user), []byte(content), 0o600); err != nil {
			t.Fatalf("writing test mailbox %s: %v", user, err)
		}
	}
	return dir
}
