// Package nav mediates discrete navigation commands against a loaded
// mailbox. Movement saturates at both ends; nothing wraps and nothing
// errors.
package nav

import (
	"fmt"

	"github.com/spoolview/spoolview/internal/mbox"
)

// State tracks which message of a fixed mailbox is currently
// displayed. The index is always a valid position whenever the
// mailbox is non-empty; on an empty mailbox every command is a no-op.
type State struct {
	box   *mbox.Mailbox
	index int
}

// New wraps a loaded mailbox, positioned at the first message.
func New(box *mbox.Mailbox) *State {
	return &State{box: box}
}

// Current returns the message at the current position, or (nil, false)
// when the mailbox is empty.
func (s *State) Current() (*mbox.Message, bool) {
	if s.box.Len() == 0 {
		return nil, false
	}
	return s.box.Message(s.index), true
}

// Next advances one message, saturating at the last.
func (s *State) Next() { s.JumpTo(s.index + 1) }

// Prev moves back one message, saturating at the first.
func (s *State) Prev() { s.JumpTo(s.index - 1) }

// First moves to the first message.
func (s *State) First() { s.JumpTo(0) }

// Last moves to the last message.
func (s *State) Last() { s.JumpTo(s.box.Len() - 1) }

// JumpTo moves to position n, clamped into the valid range.
// Out-of-range requests are silently clamped, never rejected.
func (s *State) JumpTo(n int) {
	if s.box.Len() == 0 {
		return
	}
	if n < 0 {
		n = 0
	}
	if max := s.box.Len() - 1; n > max {
		n = max
	}
	s.index = n
}

// Index returns the current zero-based position.
func (s *State) Index() int { return s.index }

// Len returns the number of messages in the wrapped mailbox.
func (s *State) Len() int { return s.box.Len() }

// Position returns a "N/M" display string for the status bar, with N
// one-based; "0/0" on an empty mailbox.
func (s *State) Position() string {
	if s.box.Len() == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", s.index+1, s.box.Len())
}
