package theme

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the top header bar and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps overlay content such as the help view.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for rows in the message index.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused index row.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// SenderStyle renders the sender column of the message index.
var SenderStyle = lipgloss.NewStyle().
	Foreground(ColorGreen)

// FieldNameStyle renders header field labels in the reader.
var FieldNameStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// FieldValueStyle renders header field values in the reader.
var FieldValueStyle = lipgloss.NewStyle().
	Foreground(ColorWhite)

// PlaceholderStyle renders stand-in text for absent header fields.
var PlaceholderStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// AgeStyle returns a color-coded style for a message date: recent mail
// stands out, old mail fades.
func AgeStyle(t time.Time) lipgloss.Style {
	base := lipgloss.NewStyle()

	switch age := time.Since(t); {
	case t.IsZero():
		return base.Foreground(ColorGray)
	case age < 24*time.Hour:
		return base.Foreground(ColorYellow).Bold(true)
	case age < 7*24*time.Hour:
		return base.Foreground(ColorWhite)
	default:
		return base.Foreground(ColorGray)
	}
}
