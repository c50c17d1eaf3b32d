package msglist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spoolview/spoolview/internal/keys"
	"github.com/spoolview/spoolview/internal/mbox"
	"github.com/spoolview/spoolview/internal/theme"
)

// SelectedMsg is sent when a user selects a message to read.
type SelectedMsg struct {
	Index int
}

// Model is the message index view component.
type Model struct {
	list        list.Model
	messages    []*mbox.Message
	keys        *keys.KeyMap
	query       string
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new message index model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Mail"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search sender or subject..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		keys:        k,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// SetMessages replaces the listed messages and reapplies any active
// search query.
func (m *Model) SetMessages(messages []*mbox.Message) tea.Cmd {
	m.messages = messages
	return m.applyQuery()
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the index view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(keyMsg)
		}
		return m.handleNormalKeys(keyMsg)
	}

	// Delegate to list model for other messages
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.query = m.searchInput.Value()
		return m, m.applyQuery()

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.query = ""
		return m, m.applyQuery()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(Item)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SelectedMsg{Index: item.Index}
		}

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.Reset()
		return m, m.searchInput.Focus()
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Searching reports whether the search input currently has focus.
func (m Model) Searching() bool {
	return m.searchMode
}

// Query returns the active search query, "" when none.
func (m Model) Query() string {
	return m.query
}

// applyQuery rebuilds the list items from the message slice, keeping
// only those matching the current query on sender or subject.
func (m *Model) applyQuery() tea.Cmd {
	query := strings.ToLower(m.query)

	var items []list.Item
	for i, msg := range m.messages {
		if query != "" &&
			!strings.Contains(strings.ToLower(msg.Sender()), query) &&
			!strings.Contains(strings.ToLower(msg.Subject()), query) {
			continue
		}
		items = append(items, Item{Msg: msg, Index: i})
	}

	return m.list.SetItems(items)
}

// Select moves the list cursor to the row showing mailbox index i, if
// it is currently listed.
func (m *Model) Select(i int) {
	for row, item := range m.list.Items() {
		if it, ok := item.(Item); ok && it.Index == i {
			m.list.Select(row)
			return
		}
	}
}

// View renders the index view.
func (m Model) View() string {
	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, searchBar, m.list.View())
	}

	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}

	return m.list.View()
}

// renderEmptyState shows guidance text when no messages are listed.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.query != "" {
		return style.Render("No matching messages.\nPress / to change the search, esc to clear it.")
	}

	return style.Render("No mail.")
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}
