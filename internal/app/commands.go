package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spoolview/spoolview/internal/mbox"
)

// mailboxLoadedMsg carries the result of an asynchronous mailbox load.
type mailboxLoadedMsg struct {
	box  *mbox.Mailbox
	path string
	err  error
}

// exportDoneMsg carries the result of saving a message copy.
type exportDoneMsg struct {
	path string
	err  error
}

// loadMailbox returns a command that reads and parses the mailbox at
// path.
func loadMailbox(path string) tea.Cmd {
	return func() tea.Msg {
		box, err := mbox.Load(path)
		return mailboxLoadedMsg{box: box, path: path, err: err}
	}
}

// exportMessage returns a command that writes a copy of msg under dir.
func exportMessage(msg *mbox.Message, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := mbox.Export(msg, dir)
		return exportDoneMsg{path: path, err: err}
	}
}
