package picker

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/spoolview/spoolview/internal/spool"
	"github.com/spoolview/spoolview/internal/theme"
)

// PickedMsg is sent when the user has chosen a mailbox to open.
type PickedMsg struct {
	Box spool.Box
}

// CancelledMsg is sent when the user aborts the picker.
type CancelledMsg struct{}

// Model is the spool user picker, shown when no user argument was
// given and several users have mail.
type Model struct {
	boxes  []spool.Box
	form   *huh.Form
	errMsg string
	width  int
	height int
}

// New creates a picker over the given mailboxes.
func New(boxes []spool.Box, width, height int) Model {
	m := Model{
		boxes:  boxes,
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

func (m Model) buildForm() *huh.Form {
	options := make([]huh.Option[string], len(m.boxes))
	for i, box := range m.boxes {
		options[i] = huh.NewOption(box.User, box.User)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("user").
				Title("Select mailbox").
				Description("Users with mail in the spool").
				Options(options...),
		),
	).WithWidth(m.formWidth())
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

// SetError shows a failure notice above the form, used when a chosen
// mailbox failed to load and the picker is shown again.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
}

// Init starts the embedded form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update drives the embedded form and emits PickedMsg on completion.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		selected := m.form.GetString("user")
		for _, box := range m.boxes {
			if box.User == selected {
				picked := box
				return m, func() tea.Msg { return PickedMsg{Box: picked} }
			}
		}
		return m, func() tea.Msg { return CancelledMsg{} }
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelledMsg{} }
	}

	return m, cmd
}

// View renders the picker.
func (m Model) View() string {
	var sections []string

	if m.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.ColorRed).
			Render(fmt.Sprintf("✗ %s", m.errMsg)))
		sections = append(sections, "")
	}

	sections = append(sections, m.form.View())

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// SetSize updates the picker dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form = m.form.WithWidth(m.formWidth())
}
