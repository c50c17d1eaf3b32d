package mbox

import (
	"errors"
	"io"
	"net/mail"
	"os"
	"strings"
	"testing"

	mboxlib "github.com/emersion/go-mbox"

	"github.com/spoolview/spoolview/tests/testutil"
)

func TestExportWritesParseableMbox(t *testing.T) {
	content := "From user@host Mon Jan 1 00:00:00 2024\n" +
		"From: a@b.com\n" +
		"Subject: keep me\n" +
		"Date: Mon, 1 Jan 2024 00:00:00 +0000\n" +
		"\n" +
		"body line\n"
	src := testutil.TempMailbox(t, "alice", content)

	box, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	dir := t.TempDir()
	path, err := Export(box.Message(0), dir)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	// The export must round-trip through a standard mbox reader.
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer f.Close()

	r := mboxlib.NewReader(f)
	mr, err := r.NextMessage()
	if err != nil {
		t.Fatalf("reading export back: %v", err)
	}
	parsed, err := mail.ReadMessage(mr)
	if err != nil {
		t.Fatalf("parsing exported message: %v", err)
	}
	if got := parsed.Header.Get("Subject"); got != "keep me" {
		t.Errorf("exported subject = %q, want keep me", got)
	}
	body, _ := io.ReadAll(parsed.Body)
	if !strings.Contains(string(body), "body line") {
		t.Errorf("exported body = %q, want the original body", body)
	}
	if _, err := r.NextMessage(); !errors.Is(err, io.EOF) {
		t.Error("export should contain exactly one message")
	}

	// The source spool file is never written.
	after, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("re-reading source: %v", err)
	}
	if string(after) != content {
		t.Error("source mailbox was modified by export")
	}
}

func TestExportNameSanitized(t *testing.T) {
	content := "From x t\n" +
		"From: a@b.com\n" +
		"Message-ID: <weird/../id with spaces@host>\n" +
		"\n" +
		"x\n"
	src := testutil.TempMailbox(t, "bob", content)

	box, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	dir := t.TempDir()
	path, err := Export(box.Message(0), dir)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("export escaped target directory: %s", path)
	}
	if strings.ContainsAny(strings.TrimPrefix(path, dir), "</> ") {
		t.Errorf("export name not sanitized: %s", path)
	}
}
