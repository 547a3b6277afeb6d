package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - headings, spinner
	ColorHighlight = "205" // Magenta - focused buttons, active tab
	ColorDanger    = "196" // Red - fetch failures
	ColorMuted     = "241" // Gray - hints, inactive tabs
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across widgets.
// Widget styles only set colors and weight so rendered text keeps its
// layout under any color profile.
var Styles = struct {
	Heading    lipgloss.Style // h1
	Subheading lipgloss.Style // h2
	Count      lipgloss.Style // counter value

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	Label lipgloss.Style // input labels
	Error lipgloss.Style // fetch failure text
	Muted lipgloss.Style
	Hint  lipgloss.Style

	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Spinner   lipgloss.Style
}{
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subheading: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Count: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true),
	Spinner: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.ButtonFocused
	d.Styles.SelectedDesc = Styles.ButtonFocused
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
