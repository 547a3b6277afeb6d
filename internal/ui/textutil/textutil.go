// Package textutil measures and clips text by terminal columns.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks clipped text.
const Ellipsis = "…"

// Width returns the number of columns plain s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate clips plain s to at most max columns, ending in Ellipsis when
// anything was cut. max <= 0 yields "".
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if Width(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, Ellipsis)
}

// ClipStyled clips every line of styled s to max columns, keeping escape
// sequences intact. max <= 0 returns s unchanged.
func ClipStyled(s string, max int) string {
	if max <= 0 || lipgloss.Width(s) <= max {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if ansi.StringWidth(l) > max {
			lines[i] = ansi.Truncate(l, max, Ellipsis)
		}
	}
	return strings.Join(lines, "\n")
}
