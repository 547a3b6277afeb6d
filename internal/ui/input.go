package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputView is a controlled text input: it always renders Value and reports
// each edit to OnChange without keeping the edited text itself. The owner
// decides whether to feed the new value back.
type InputView struct {
	Value    string
	OnChange func(string)
	input    textinput.Model
}

// Ensure InputView implements View.
var _ View = (*InputView)(nil)

// NewInputView creates a focused controlled input.
func NewInputView(value string, onChange func(string)) *InputView {
	return &InputView{
		Value:    value,
		OnChange: onChange,
		input:    newTextInput(value),
	}
}

func newTextInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 40
	ti.SetValue(value)
	ti.Focus()
	return ti
}

// CapturesText implements TextCapturer.
func (v *InputView) CapturesText() bool { return true }

// Init implements View.
func (v *InputView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *InputView) Update(msg tea.Msg) (View, tea.Cmd) {
	v.input.SetValue(v.Value)
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if next := v.input.Value(); next != v.Value && v.OnChange != nil {
		v.OnChange(next)
	}
	return v, cmd
}

// View implements View.
func (v *InputView) View() string {
	ti := v.input
	ti.SetValue(v.Value)
	return ti.View()
}

// CallbackInputView owns a string and renders it through a controlled
// InputView whose change callback stores the edit.
type CallbackInputView struct {
	value string
	input *InputView
}

// Ensure CallbackInputView implements View.
var _ View = (*CallbackInputView)(nil)

// NewCallbackInputView creates an empty owner/input pair.
func NewCallbackInputView() *CallbackInputView {
	c := &CallbackInputView{}
	c.input = NewInputView("", c.setValue)
	return c
}

func (c *CallbackInputView) setValue(s string) {
	c.value = s
	c.input.Value = s
}

// Value returns the owned value.
func (c *CallbackInputView) Value() string {
	return c.value
}

// CapturesText implements TextCapturer.
func (c *CallbackInputView) CapturesText() bool { return true }

// Init implements View.
func (c *CallbackInputView) Init() tea.Cmd {
	return c.input.Init()
}

// Update implements View.
func (c *CallbackInputView) Update(msg tea.Msg) (View, tea.Cmd) {
	_, cmd := c.input.Update(msg)
	return c, cmd
}

// View implements View.
func (c *CallbackInputView) View() string {
	return c.input.View()
}
