package spool

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spoolview/spoolview/internal/mbox"
	"github.com/spoolview/spoolview/tests/testutil"
)

func TestListSkipsAndSorts(t *testing.T) {
	dir := testutil.TempSpool(t, map[string]string{
		"zoe":   "",
		"alice": "",
		"root":  "",
		".lock": "",
		"mia":   "",
	})
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}

	boxes, err := List(dir, []string{"root"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var users []string
	for _, box := range boxes {
		users = append(users, box.User)
	}

	for _, unwanted := range []string{"root", ".lock", "subdir"} {
		for _, u := range users {
			if u == unwanted {
				t.Errorf("List included %q", unwanted)
			}
		}
	}
	if !sort.StringsAreSorted(users) {
		t.Errorf("users not sorted: %v", users)
	}
	if len(users) != 3 {
		t.Errorf("got %d users, want 3: %v", len(users), users)
	}
}

func TestListMissingDir(t *testing.T) {
	if _, err := List(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Error("expected an error for a missing spool directory")
	}
}

func TestFind(t *testing.T) {
	dir := testutil.TempSpool(t, map[string]string{"alice": ""})

	box, err := Find(dir, "alice")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if box.User != "alice" {
		t.Errorf("user = %q, want alice", box.User)
	}
	if box.Path != filepath.Join(dir, "alice") {
		t.Errorf("path = %q", box.Path)
	}
}

func TestFindMissingUser(t *testing.T) {
	dir := testutil.TempSpool(t, map[string]string{"alice": ""})

	_, err := Find(dir, "bob")
	if !errors.Is(err, mbox.ErrNotFound) {
		t.Errorf("err = %v, want mbox.ErrNotFound", err)
	}
}
