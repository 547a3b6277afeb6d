package ui

import tea "github.com/charmbracelet/bubbletea"

// Button is a labelled push button. It is a leaf used inside widgets,
// not a View of its own.
type Button struct {
	Label   string
	Focused bool
	OnPress func()
}

// Press runs OnPress.
func (b *Button) Press() {
	if b.OnPress != nil {
		b.OnPress()
	}
}

// HandleKey presses a focused button on enter. Returns true if consumed.
func (b *Button) HandleKey(msg tea.KeyMsg) bool {
	if !b.Focused || msg.String() != "enter" {
		return false
	}
	b.Press()
	return true
}

// View renders "[ Label ]".
func (b *Button) View() string {
	text := "[ " + b.Label + " ]"
	if b.Focused {
		return Styles.ButtonFocused.Render(text)
	}
	return Styles.Button.Render(text)
}

// clickButton presses the button whose label matches.
func clickButton(label string, buttons ...*Button) bool {
	for _, b := range buttons {
		if b.Label == label {
			b.Press()
			return true
		}
	}
	return false
}
