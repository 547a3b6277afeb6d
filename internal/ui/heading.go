package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	HeadingInitial = "Magnificent Monkeys"
	HeadingClicked = "Radical Rhinos"
	Subheading     = "Our first test"
	ClickMeLabel   = "Click Me"
)

// HeadingView shows a heading, a fixed subheading and a button that
// replaces the heading.
type HeadingView struct {
	heading string
	button  *Button
}

// Ensure HeadingView implements View and Clicker.
var (
	_ View    = (*HeadingView)(nil)
	_ Clicker = (*HeadingView)(nil)
)

// NewHeadingView creates the view with the button focused.
func NewHeadingView() *HeadingView {
	h := &HeadingView{heading: HeadingInitial}
	h.button = &Button{
		Label:   ClickMeLabel,
		Focused: true,
		OnPress: func() { h.heading = HeadingClicked },
	}
	return h
}

// Headings returns the heading texts in document order (h1, h2).
func (h *HeadingView) Headings() []string {
	return []string{h.heading, Subheading}
}

// Click implements Clicker.
func (h *HeadingView) Click(label string) bool {
	return clickButton(label, h.button)
}

// Init implements View.
func (h *HeadingView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HeadingView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		h.button.HandleKey(msg)
	}
	return h, nil
}

// View implements View.
func (h *HeadingView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Heading.Render(h.heading) + "\n")
	b.WriteString(Styles.Subheading.Render(Subheading) + "\n")
	b.WriteString(h.button.View())
	return b.String()
}
