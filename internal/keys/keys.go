package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Line movement
	Down key.Binding
	Up   key.Binding

	// Message navigation
	NextMail  key.Binding
	PrevMail  key.Binding
	FirstMail key.Binding
	LastMail  key.Binding

	// Selection
	Select key.Binding

	// Index/reader toggle
	Index key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Search
	Search key.Binding

	// Command prompt
	Prompt key.Binding

	// Help toggle
	Help key.Binding

	// Save a copy of the current message
	Export key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		NextMail: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n/→", "next mail"),
		),
		PrevMail: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "previous mail"),
		),
		FirstMail: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first mail"),
		),
		LastMail: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last mail"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read mail"),
		),
		Index: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "message index"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Prompt: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command prompt"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Export: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save copy"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back,
		k.Quit, k.Help, k.Search,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit},
		{k.NextMail, k.PrevMail, k.FirstMail, k.LastMail},
		{k.Search, k.Prompt, k.Help, k.Index, k.Export},
	}
}
