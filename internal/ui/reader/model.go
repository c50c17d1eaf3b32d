package reader

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spoolview/spoolview/internal/keys"
	"github.com/spoolview/spoolview/internal/mbox"
	"github.com/spoolview/spoolview/internal/theme"
)

// BackMsg signals the parent to navigate back to the index view.
type BackMsg struct{}

// MoveMsg asks the parent to move message-level navigation. The parent
// owns the navigation state; the reader only requests movement.
type MoveMsg struct {
	Move Move
}

// Move identifies a message-level navigation command.
type Move int

const (
	MoveNext Move = iota
	MovePrev
	MoveFirst
	MoveLast
)

// Model is the single-message reader view component.
type Model struct {
	msg      *mbox.Message
	viewport viewport.Model
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates a new reader model.
func New(k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     k,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the reader.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the reader view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(keyMsg, m.keys.NextMail):
			return m, moveCmd(MoveNext)

		case key.Matches(keyMsg, m.keys.PrevMail):
			return m, moveCmd(MovePrev)

		case key.Matches(keyMsg, m.keys.FirstMail):
			return m, moveCmd(MoveFirst)

		case key.Matches(keyMsg, m.keys.LastMail):
			return m, moveCmd(MoveLast)
		}
	}

	// Delegate to viewport for line scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func moveCmd(mv Move) tea.Cmd {
	return func() tea.Msg { return MoveMsg{Move: mv} }
}

// View renders the reader view.
func (m Model) View() string {
	if m.msg == nil {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render("No mail.")
	}

	return m.viewport.View()
}

// renderContent builds the full reader content string for the viewport.
func (m Model) renderContent() string {
	if m.msg == nil {
		return ""
	}

	var sections []string

	sections = append(sections, headerField("From:   ", m.msg.Sender()))
	sections = append(sections, headerField("Date:   ", m.msg.Date()))
	sections = append(sections, headerField("Subject:", m.msg.Subject()))

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", min(m.width-4, 80)))
	sections = append(sections, "")
	sections = append(sections, separator)
	sections = append(sections, "")

	body := m.msg.DisplayBody()
	if len(body) == 0 {
		sections = append(sections, theme.PlaceholderStyle.Render("(empty message)"))
	} else {
		sections = append(sections, body...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// headerField renders one "Name: value" line of the reader header
// block, substituting a placeholder for absent fields.
func headerField(name, value string) string {
	if value == "" {
		value = theme.PlaceholderStyle.Render("(none)")
	} else {
		value = theme.FieldValueStyle.Render(value)
	}
	return fmt.Sprintf("%s %s", theme.FieldNameStyle.Render(name), value)
}

// SetMessage updates the message being displayed and scrolls back to
// the top.
func (m *Model) SetMessage(msg *mbox.Message) {
	m.msg = msg
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Message returns the currently displayed message, nil when none.
func (m Model) Message() *mbox.Message {
	return m.msg
}

// SetSize updates the reader view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	if m.msg != nil {
		m.viewport.SetContent(m.renderContent())
	}
}
