package textutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 5, Width("Tiger"))
	assert.Equal(t, 4, Width("日本"))
	assert.Equal(t, 0, Width(""))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "Lion", 10, "Lion"},
		{"exact", "Lion", 4, "Lion"},
		{"clipped", "Elephant", 5, "Elep…"},
		{"wide runes", "日本語", 5, "日本…"},
		{"zero", "Zebra", 0, ""},
		{"negative", "Zebra", -3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, Width(got), max(tt.max, 0))
		})
	}
}

func TestClipStyled(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	s := style.Render("Magnificent Monkeys") + "\nok"

	assert.Equal(t, s, ClipStyled(s, 0), "no width means no clipping")
	assert.Equal(t, s, ClipStyled(s, 40))

	got := ClipStyled(s, 8)
	assert.Equal(t, "Magnifi…\nok", ansi.Strip(got))
	assert.LessOrEqual(t, lipgloss.Width(got), 8)
}
