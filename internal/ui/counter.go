package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	IncrementLabel = "Increment"
	DecrementLabel = "Decrement"
)

// CounterView holds an integer changed by two buttons.
// left/right (h/l) move focus between the buttons, enter presses,
// + and - are shortcuts.
type CounterView struct {
	count     int
	increment *Button
	decrement *Button
	focus     *FocusManager
}

// Ensure CounterView implements View and Clicker.
var (
	_ View    = (*CounterView)(nil)
	_ Clicker = (*CounterView)(nil)
)

// NewCounterView creates a counter at 0 with Increment focused.
func NewCounterView() *CounterView {
	c := &CounterView{}
	c.increment = &Button{Label: IncrementLabel, Focused: true, OnPress: func() { c.count++ }}
	c.decrement = &Button{Label: DecrementLabel, OnPress: func() { c.count-- }}
	c.focus = &FocusManager{
		Current: IncrementLabel,
		Order:   []string{IncrementLabel, DecrementLabel},
		OnChange: func(_, to string) {
			c.increment.Focused = to == IncrementLabel
			c.decrement.Focused = to == DecrementLabel
		},
	}
	return c
}

// Count returns the current value.
func (c *CounterView) Count() int {
	return c.count
}

// CountText is the rendered counter value.
func (c *CounterView) CountText() string {
	return strconv.Itoa(c.count)
}

// Focused returns the label of the focused button.
func (c *CounterView) Focused() string {
	return c.focus.Current
}

// Click implements Clicker.
func (c *CounterView) Click(label string) bool {
	return clickButton(label, c.increment, c.decrement)
}

// Init implements View.
func (c *CounterView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (c *CounterView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch km.String() {
	case "left", "h":
		c.focus.Prev()
	case "right", "l":
		c.focus.Next()
	case "+", "=":
		c.increment.Press()
	case "-", "_":
		c.decrement.Press()
	default:
		if !c.increment.HandleKey(km) {
			c.decrement.HandleKey(km)
		}
	}
	return c, nil
}

// View implements View.
func (c *CounterView) View() string {
	return Styles.Count.Render(c.CountText()) + "\n" +
		c.increment.View() + " " + c.decrement.View()
}
