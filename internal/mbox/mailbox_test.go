package mbox

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spoolview/spoolview/tests/testutil"
)

const sampleBox = `From user@host Mon Jan 1 00:00:00 2024
From: a@b.com
Subject: Hi

Hello
From user@host Mon Jan 1 01:00:00 2024
From: c@d.com
Subject: Second

World
`

func TestLoadTwoMessages(t *testing.T) {
	path := testutil.TempMailbox(t, "alice", sampleBox)

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if box.Len() != 2 {
		t.Fatalf("got %d messages, want 2", box.Len())
	}
	if box.User() != "alice" {
		t.Errorf("user = %q, want alice", box.User())
	}

	first := box.Message(0)
	if got := first.Sender(); got != "a@b.com" {
		t.Errorf("sender = %q, want a@b.com", got)
	}
	if got := first.Subject(); got != "Hi" {
		t.Errorf("subject = %q, want Hi", got)
	}
	if body := first.Body(); len(body) != 1 || body[0] != "Hello" {
		t.Errorf("body = %v, want [Hello]", body)
	}

	if got := box.Message(1).Subject(); got != "Second" {
		t.Errorf("second subject = %q, file order not preserved", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nobody"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadUnreadablePath(t *testing.T) {
	// A directory path opens but cannot be read as a file.
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrRead) {
		t.Errorf("err = %v, want ErrRead", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := testutil.TempMailbox(t, "empty", "")

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if box.Len() != 0 {
		t.Errorf("got %d messages from an empty file, want 0", box.Len())
	}
}

func TestLoadMalformedMessageDegrades(t *testing.T) {
	content := "From user@host Mon Jan 1 00:00:00 2024\n" +
		"complete garbage, no colon anywhere\n" +
		"\n" +
		"still a body\n"
	path := testutil.TempMailbox(t, "bob", content)

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load must not fail on malformed content: %v", err)
	}
	if box.Len() != 1 {
		t.Fatalf("got %d messages, want 1", box.Len())
	}

	msg := box.Message(0)
	if msg.Sender() != "" || msg.Subject() != "" || msg.Date() != "" {
		t.Error("malformed message should degrade to empty display fields")
	}
	if body := msg.Body(); len(body) != 1 || body[0] != "still a body" {
		t.Errorf("body = %v, want [still a body]", body)
	}
}

func TestMessageIDFallback(t *testing.T) {
	path := testutil.TempMailbox(t, "carl",
		"From x t\nFrom: x@y.z\n\nhi\n")

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if id := box.Message(0).ID(); id == "" {
		t.Error("message without Message-ID should get a generated ID")
	}
}

func TestMessageTimeParsing(t *testing.T) {
	content := "From x t\nFrom: x@y.z\nDate: Mon, 1 Jan 2024 12:30:00 +0000\n\nhi\n"
	path := testutil.TempMailbox(t, "dora", content)

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tm := box.Message(0).Time()
	if tm.IsZero() {
		t.Fatal("Date header should parse")
	}
	if tm.Hour() != 12 || tm.Minute() != 30 {
		t.Errorf("parsed time = %v, want 12:30", tm)
	}
}
