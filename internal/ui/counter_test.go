package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterView_IncrementOnClick(t *testing.T) {
	c := NewCounterView()

	c.Click(IncrementLabel)
	c.Click(IncrementLabel)

	assert.Equal(t, "2", c.CountText())
	assert.True(t, strings.HasPrefix(render(c), "2\n"), render(c))
}

func TestCounterView_DecrementOnClick(t *testing.T) {
	c := NewCounterView()

	c.Click(DecrementLabel)
	c.Click(DecrementLabel)

	assert.Equal(t, "-2", c.CountText())
	assert.Equal(t, -2, c.Count())
}

func TestCounterView_Keyboard(t *testing.T) {
	c := NewCounterView()
	assert.Equal(t, IncrementLabel, c.Focused())

	press(c, "enter", "enter", "enter")
	assert.Equal(t, 3, c.Count())

	press(c, "right")
	assert.Equal(t, DecrementLabel, c.Focused())
	press(c, "enter")
	assert.Equal(t, 2, c.Count())

	press(c, "h")
	assert.Equal(t, IncrementLabel, c.Focused())
	press(c, "l", "l")
	assert.Equal(t, IncrementLabel, c.Focused(), "focus wraps around")
}

func TestCounterView_Shortcuts(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"plus", []string{"+", "+"}, 2},
		{"minus", []string{"-", "-"}, -2},
		{"mixed", []string{"+", "-", "-", "+", "+"}, 1},
		{"unbound", []string{"x", "j"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounterView()
			press(c, tt.keys...)
			assert.Equal(t, tt.want, c.Count())
		})
	}
}

func TestCounterView_View(t *testing.T) {
	c := NewCounterView()
	assert.Equal(t, "0\n[ Increment ] [ Decrement ]\n", render(c))
}
