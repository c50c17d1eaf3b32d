package nav

import (
	"testing"

	"github.com/spoolview/spoolview/internal/mbox"
	"github.com/spoolview/spoolview/tests/testutil"
)

func loadBox(t *testing.T, content string) *mbox.Mailbox {
	t.Helper()
	box, err := mbox.Load(testutil.TempMailbox(t, "u", content))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return box
}

func threeMessageBox(t *testing.T) *mbox.Mailbox {
	t.Helper()
	return loadBox(t,
		"From a t\nSubject: one\n\n1\n"+
			"From b t\nSubject: two\n\n2\n"+
			"From c t\nSubject: three\n\n3\n")
}

func TestNextSaturatesAtLast(t *testing.T) {
	s := New(threeMessageBox(t))

	s.Next()
	s.Next()
	if s.Index() != 2 {
		t.Fatalf("index = %d, want 2", s.Index())
	}

	// Repeated Next at the end is an idempotent no-op.
	s.Next()
	s.Next()
	if s.Index() != 2 {
		t.Errorf("index = %d after Next at last, want 2", s.Index())
	}
}

func TestPrevSaturatesAtFirst(t *testing.T) {
	s := New(threeMessageBox(t))

	s.Prev()
	s.Prev()
	if s.Index() != 0 {
		t.Errorf("index = %d after Prev at first, want 0", s.Index())
	}
}

func TestFirstLast(t *testing.T) {
	s := New(threeMessageBox(t))

	s.Last()
	if s.Index() != 2 {
		t.Errorf("Last: index = %d, want 2", s.Index())
	}
	s.First()
	if s.Index() != 0 {
		t.Errorf("First: index = %d, want 0", s.Index())
	}
}

func TestJumpToClamps(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"in range", 1, 1},
		{"far past the end", 1000, 2},
		{"negative", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(threeMessageBox(t))
			s.JumpTo(tt.n)
			if s.Index() != tt.want {
				t.Errorf("JumpTo(%d): index = %d, want %d", tt.n, s.Index(), tt.want)
			}
		})
	}
}

func TestCurrentFollowsNavigation(t *testing.T) {
	s := New(threeMessageBox(t))

	msg, ok := s.Current()
	if !ok {
		t.Fatal("Current on non-empty mailbox must report presence")
	}
	if msg.Subject() != "one" {
		t.Errorf("subject = %q, want one", msg.Subject())
	}

	s.Next()
	msg, _ = s.Current()
	if msg.Subject() != "two" {
		t.Errorf("subject = %q, want two", msg.Subject())
	}
}

func TestEmptyMailbox(t *testing.T) {
	s := New(loadBox(t, ""))

	if _, ok := s.Current(); ok {
		t.Error("Current on empty mailbox must report absence")
	}

	// All commands are no-ops; none may panic or move the index.
	s.Next()
	s.Prev()
	s.First()
	s.Last()
	s.JumpTo(7)

	if _, ok := s.Current(); ok {
		t.Error("Current must still report absence after commands")
	}
	if got := s.Position(); got != "0/0" {
		t.Errorf("Position = %q, want 0/0", got)
	}
}

func TestPosition(t *testing.T) {
	s := New(threeMessageBox(t))
	if got := s.Position(); got != "1/3" {
		t.Errorf("Position = %q, want 1/3", got)
	}
	s.Last()
	if got := s.Position(); got != "3/3" {
		t.Errorf("Position = %q, want 3/3", got)
	}
}
