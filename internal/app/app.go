package app

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spoolview/spoolview/internal/keys"
	"github.com/spoolview/spoolview/internal/mbox"
	"github.com/spoolview/spoolview/internal/nav"
	"github.com/spoolview/spoolview/internal/spool"
	"github.com/spoolview/spoolview/internal/ui"
	helpview "github.com/spoolview/spoolview/internal/ui/help"
	"github.com/spoolview/spoolview/internal/ui/msglist"
	"github.com/spoolview/spoolview/internal/ui/picker"
	"github.com/spoolview/spoolview/internal/ui/prompt"
	"github.com/spoolview/spoolview/internal/ui/reader"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewPicker ViewState = iota
	ViewIndex
	ViewReader
	ViewHelp
	ViewPrompt
)

// Options configures the root application model.
type Options struct {
	// Target is the mailbox to open immediately. Nil means the picker
	// chooses among Boxes.
	Target *spool.Box

	// Boxes are the discovered spool mailboxes, shown by the picker.
	Boxes []spool.Box

	// ExportDir receives saved copies of messages.
	ExportDir string

	Logger *slog.Logger
}

// Model is the root Bubble Tea model that manages view routing,
// layout, and the navigation state of the open mailbox.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	keys         *keys.KeyMap
	logger       *slog.Logger

	mailbox  *mbox.Mailbox
	navState *nav.State
	boxes    []spool.Box

	indexView  msglist.Model
	readerView reader.Model
	helpView   helpview.Model
	promptView prompt.Model
	pickerView picker.Model

	exportDir   string
	pendingLoad string
	statusMsg   string
	fatalErr    error
	loading     bool
	ready       bool
}

// Err returns the error that terminated the session, if any. The CLI
// maps it onto the process exit status.
func (m Model) Err() error {
	return m.fatalErr
}

// New creates a new root application model.
func New(opts Options) Model {
	k := keys.DefaultKeyMap()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m := Model{
		currentView: ViewPicker,
		keys:        k,
		logger:      logger,
		boxes:       opts.Boxes,
		indexView:   msglist.New(k, 80, 24),
		readerView:  reader.New(k, 80, 24),
		helpView:    helpview.New(k, 80, 24),
		promptView:  prompt.New(80, 24),
		pickerView:  picker.New(opts.Boxes, 80, 24),
		exportDir:   opts.ExportDir,
	}

	if opts.Target != nil {
		m.currentView = ViewIndex
		m.loading = true
		m.pendingLoad = opts.Target.Path
	}

	return m
}

// Init returns the initial command: load the target mailbox, or start
// the picker form when no target was chosen yet.
func (m Model) Init() tea.Cmd {
	if m.pendingLoad != "" {
		return loadMailbox(m.pendingLoad)
	}
	return m.pickerView.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.indexView.SetSize(contentWidth, contentHeight)
		m.readerView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.promptView.SetSize(contentWidth, contentHeight)
		m.pickerView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case mailboxLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Error("mailbox load failed", "path", msg.path, "err", msg.err)
			if len(m.boxes) > 1 {
				// Let the user pick another spool user.
				m.pickerView = picker.New(m.boxes, m.layout.ContentWidth(), m.layout.ContentHeight())
				m.pickerView.SetError(fmt.Sprintf("could not open %s: %v", msg.path, msg.err))
				m.currentView = ViewPicker
				return m, m.pickerView.Init()
			}
			m.fatalErr = msg.err
			return m, tea.Quit
		}

		m.logger.Info("mailbox loaded", "path", msg.box.Path(), "messages", msg.box.Len())
		m.mailbox = msg.box
		m.navState = nav.New(msg.box)
		m.currentView = ViewIndex
		return m, m.indexView.SetMessages(msg.box.Messages())

	case exportDoneMsg:
		if msg.err != nil {
			m.logger.Error("export failed", "err", msg.err)
			m.statusMsg = fmt.Sprintf("save failed: %v", msg.err)
		} else {
			m.logger.Info("message exported", "path", msg.path)
			m.statusMsg = "saved to " + msg.path
		}
		return m, nil

	case msglist.SelectedMsg:
		if m.navState == nil {
			return m, nil
		}
		m.navState.JumpTo(msg.Index)
		return m.openReader()

	case reader.MoveMsg:
		return m.applyMove(msg.Move)

	case reader.BackMsg:
		m.currentView = ViewIndex
		return m, nil

	case prompt.PromptMsg:
		m.currentView = m.previousView
		return m.executePrompt(string(msg))

	case prompt.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case picker.PickedMsg:
		m.currentView = ViewIndex
		m.loading = true
		return m, loadMailbox(msg.Box.Path)

	case picker.CancelledMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		// Any key press clears a transient status message.
		m.statusMsg = ""
		if model, cmd, handled := m.handleGlobalKey(msg); handled {
			return model, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleGlobalKey processes keys that work regardless of the focused
// view, except when a text input or form owns the keyboard.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}

	// The picker form, the prompt input, and index search consume
	// plain characters themselves.
	if m.currentView == ViewPicker || m.currentView == ViewPrompt {
		return m, nil, false
	}
	if m.currentView == ViewIndex && m.indexView.Searching() {
		return m, nil, false
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit, true

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil, true

	case "esc":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}

	case ":":
		m.previousView = m.currentView
		m.currentView = ViewPrompt
		m.statusMsg = ""
		return m, m.promptView.Focus(), true

	case "i":
		if m.currentView == ViewReader {
			m.currentView = ViewIndex
			return m, nil, true
		}
		if m.currentView == ViewIndex {
			model, cmd := m.openReader()
			return model, cmd, true
		}

	case "s":
		if m.currentView == ViewIndex || m.currentView == ViewReader {
			if current, ok := m.current(); ok {
				return m, exportMessage(current, m.exportDir), true
			}
			m.statusMsg = "no mail to save"
			return m, nil, true
		}
	}

	return m, nil, false
}

// openReader shows the currently selected message in the reader view.
func (m Model) openReader() (tea.Model, tea.Cmd) {
	current, ok := m.current()
	if !ok {
		m.statusMsg = "no mail"
		return m, nil
	}
	m.previousView = m.currentView
	m.currentView = ViewReader
	m.readerView.SetMessage(current)
	return m, nil
}

// applyMove routes a message-level navigation request through the
// navigation state and refreshes the reader and index selection.
func (m Model) applyMove(mv reader.Move) (tea.Model, tea.Cmd) {
	if m.navState == nil {
		return m, nil
	}

	switch mv {
	case reader.MoveNext:
		m.navState.Next()
	case reader.MovePrev:
		m.navState.Prev()
	case reader.MoveFirst:
		m.navState.First()
	case reader.MoveLast:
		m.navState.Last()
	}

	if current, ok := m.navState.Current(); ok {
		m.readerView.SetMessage(current)
		m.indexView.Select(m.navState.Index())
	}
	return m, nil
}

// executePrompt handles a command string from the prompt: a mail
// number jumps to that message (one-based, clamped), q quits.
func (m Model) executePrompt(cmd string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "q", "quit":
		return m, tea.Quit
	}

	if n, err := strconv.Atoi(strings.TrimSpace(cmd)); err == nil {
		if m.navState == nil {
			return m, nil
		}
		m.navState.JumpTo(n - 1)
		if current, ok := m.navState.Current(); ok {
			m.currentView = ViewReader
			m.readerView.SetMessage(current)
			m.indexView.Select(m.navState.Index())
		}
		return m, nil
	}

	m.statusMsg = fmt.Sprintf("unknown command: %s", cmd)
	return m, nil
}

// current returns the message under the navigation cursor.
func (m Model) current() (*mbox.Message, bool) {
	if m.navState == nil {
		return nil, false
	}
	return m.navState.Current()
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewIndex:
		m.indexView, cmd = m.indexView.Update(msg)
	case ViewReader:
		m.readerView, cmd = m.readerView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewPrompt:
		m.promptView, cmd = m.promptView.Update(msg)
	case ViewPicker:
		m.pickerView, cmd = m.pickerView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready || m.loading {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.headerTitle(), m.positionSegment())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.statusLine())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewIndex:
		return m.indexView.View()
	case ViewReader:
		return m.readerView.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewPrompt:
		return m.promptView.View()
	case ViewPicker:
		return m.pickerView.View()
	default:
		return ""
	}
}

// headerTitle returns the header bar title.
func (m Model) headerTitle() string {
	if m.mailbox == nil {
		return "spoolview"
	}
	return "spoolview — " + m.mailbox.User()
}

// positionSegment returns the "Mail N/M" indicator for the header.
func (m Model) positionSegment() string {
	if m.navState == nil {
		return ""
	}
	return "Mail " + m.navState.Position()
}

// statusLine returns the status bar content: a transient status
// message when one is pending, otherwise the current mail's date plus
// per-view key hints.
func (m Model) statusLine() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}

	hints := m.keyHints()
	if current, ok := m.current(); ok && m.currentView == ViewReader {
		date := current.Date()
		if date == "" {
			date = "Unknown"
		}
		return date + "    " + hints
	}
	return hints
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewPrompt:
		return "enter execute | esc back"
	case ViewReader:
		return "n/p next/prev mail | g/G first/last | j/k scroll | s save | i index | q quit"
	case ViewPicker:
		return "enter open mailbox | esc quit"
	default:
		if query := m.indexView.Query(); query != "" {
			return fmt.Sprintf("search: %q | / change | esc clear", query)
		}
		return "enter read | / search | : goto | s save | ? help | q quit"
	}
}
