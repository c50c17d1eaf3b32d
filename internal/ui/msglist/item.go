package msglist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spoolview/spoolview/internal/mbox"
	"github.com/spoolview/spoolview/internal/theme"
)

// Item wraps one message plus its mailbox position so it can be used
// in a bubbles/list.
type Item struct {
	Msg   *mbox.Message
	Index int
}

// FilterValue returns the string used for fuzzy filtering.
func (i Item) FilterValue() string {
	return i.Msg.Sender() + " " + i.Msg.Subject()
}

// ItemDelegate implements list.ItemDelegate for rendering index rows.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single index row: date, sender, subject.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}

	msg := it.Msg

	date := "            "
	if t := msg.Time(); !t.IsZero() {
		date = theme.AgeStyle(t).Render(t.Format("Jan 02 15:04"))
	}

	sender := msg.Sender()
	if sender == "" {
		sender = theme.PlaceholderStyle.Render("(unknown sender)")
	} else {
		sender = theme.SenderStyle.Render(truncate(sender, 30))
	}

	subject := msg.Subject()
	if subject == "" {
		subject = theme.PlaceholderStyle.Render("(no subject)")
	}

	line := fmt.Sprintf("%s  %s  %s", date, sender, subject)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// truncate shortens s to at most n runes, appending an ellipsis when
// anything was cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
