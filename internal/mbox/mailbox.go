package mbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Mailbox is the fully parsed, in-memory form of one spool file.
type Mailbox struct {
	path     string
	user     string
	messages []*Message
}

// Load reads the mailbox file at path and parses every message in it.
// It returns an error wrapping ErrNotFound when the path does not
// exist and one wrapping ErrRead for any other read failure. Malformed
// message content never fails the load; such messages come back with
// empty display fields.
func Load(path string) (*Mailbox, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	var messages []*Message
	s := NewSplitter(string(content))
	for {
		rec, ok := s.Next()
		if !ok {
			break
		}
		messages = append(messages, newMessage(rec))
	}

	return &Mailbox{
		path:     path,
		user:     filepath.Base(path),
		messages: messages,
	}, nil
}

// Path returns the source file location.
func (b *Mailbox) Path() string { return b.path }

// User returns the spool user name, derived from the file base name.
func (b *Mailbox) User() string { return b.user }

// Messages returns the parsed messages in file order.
func (b *Mailbox) Messages() []*Message { return b.messages }

// Len returns the number of messages.
func (b *Mailbox) Len() int { return len(b.messages) }

// Message returns the message at index i.
func (b *Mailbox) Message(i int) *Message { return b.messages[i] }
