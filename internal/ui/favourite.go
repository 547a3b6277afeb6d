package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FavouriteLabel labels the favourite animal input.
const FavouriteLabel = "What is your favourite wild animal?"

// FavouriteInputView is an uncontrolled labelled input. OnChange receives
// the full value after every edit that changes it.
type FavouriteInputView struct {
	OnChange func(string)
	input    textinput.Model
}

// Ensure FavouriteInputView implements View.
var _ View = (*FavouriteInputView)(nil)

// NewFavouriteInputView creates an empty focused input.
func NewFavouriteInputView(onChange func(string)) *FavouriteInputView {
	return &FavouriteInputView{
		OnChange: onChange,
		input:    newTextInput(""),
	}
}

// Value returns the current text.
func (f *FavouriteInputView) Value() string {
	return f.input.Value()
}

// CapturesText implements TextCapturer.
func (f *FavouriteInputView) CapturesText() bool { return true }

// Init implements View.
func (f *FavouriteInputView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (f *FavouriteInputView) Update(msg tea.Msg) (View, tea.Cmd) {
	prev := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if next := f.input.Value(); next != prev && f.OnChange != nil {
		f.OnChange(next)
	}
	return f, cmd
}

// View implements View.
func (f *FavouriteInputView) View() string {
	return Styles.Label.Render(FavouriteLabel) + "\n" + f.input.View()
}
