package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each widget is a View with its own state, update and render.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// TextCapturer is implemented by views that consume plain key presses as
// text. The app does not interpret leader or single-letter bindings while
// such a view is active.
type TextCapturer interface {
	CapturesText() bool
}

// Clicker is implemented by views with labelled buttons.
type Clicker interface {
	// Click presses the button with the given label and reports whether
	// one was found.
	Click(label string) bool
}
