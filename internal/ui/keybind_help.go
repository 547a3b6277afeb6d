package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint
	return m
}

// leaderBindings converts the current leader hints into key.Bindings,
// sorted by key, followed by esc.
func leaderBindings(h *KeyHandler, mode AppMode) []key.Binding {
	hints := h.Registry.LeaderHints(strings.Join(h.Buffer, " "), mode)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// RenderKeybindHelp produces the transient bar shown after SPC.
func RenderKeybindHelp(h *KeyHandler, mode AppMode) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	bindings := leaderBindings(h, mode)
	if len(bindings) == 0 {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return box.Render(Styles.Muted.Render(strings.Join(h.Buffer, " ")) + " " + newHelpModel().ShortHelpView(bindings))
}

// footerBindings are the always-visible hints.
func footerBindings(mode AppMode) []key.Binding {
	b := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
	}
	if !mode.CapturesText() {
		b = append(b, key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "commands")))
	}
	return append(b, key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")))
}

// RenderFooter renders the one-line hint bar.
func RenderFooter(mode AppMode) string {
	return newHelpModel().ShortHelpView(footerBindings(mode))
}
