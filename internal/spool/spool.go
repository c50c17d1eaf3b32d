// Package spool enumerates user mailboxes under a system mail spool
// directory.
package spool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spoolview/spoolview/internal/mbox"
)

// DefaultDir is the conventional system mail spool location.
const DefaultDir = "/var/mail"

// Box identifies one user's mailbox file.
type Box struct {
	User string
	Path string
}

// List returns one Box per regular file in dir, skipping dot files,
// directories, and excluded user names, sorted by user name.
func List(dir string, exclude []string) ([]Box, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading spool directory %s: %w", dir, err)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	var boxes []Box
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || excluded[name] {
			continue
		}
		boxes = append(boxes, Box{User: name, Path: filepath.Join(dir, name)})
	}
	return boxes, nil
}

// Find resolves the mailbox of a single user. It reports
// mbox.ErrNotFound when the user has no mailbox file under dir.
func Find(dir, user string) (Box, error) {
	path := filepath.Join(dir, user)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Box{}, fmt.Errorf("%w: no mailbox for user %s under %s",
			mbox.ErrNotFound, user, dir)
	}
	return Box{User: user, Path: path}, nil
}
