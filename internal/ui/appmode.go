package ui

import "strings"

// AppMode is the widget tab shown by the app.
type AppMode int

const (
	ModeHeading AppMode = iota
	ModeCounter
	ModeCallbacks
	ModeFavourite
	ModeList
	ModeAsync
	modeCount
)

// Modes lists every tab in display order.
func Modes() []AppMode {
	out := make([]AppMode, 0, modeCount)
	for m := ModeHeading; m < modeCount; m++ {
		out = append(out, m)
	}
	return out
}

func (m AppMode) String() string {
	switch m {
	case ModeHeading:
		return "Heading"
	case ModeCounter:
		return "Counter"
	case ModeCallbacks:
		return "Callbacks"
	case ModeFavourite:
		return "Favourite"
	case ModeList:
		return "List"
	case ModeAsync:
		return "Async"
	default:
		return "Unknown"
	}
}

// CapturesText reports whether the tab hosts a text input.
func (m AppMode) CapturesText() bool {
	return m == ModeCallbacks || m == ModeFavourite
}

// Shift returns the tab delta steps away, wrapping around.
func (m AppMode) Shift(delta int) AppMode {
	n := int(modeCount)
	return AppMode(((int(m)+delta)%n + n) % n)
}

// ParseMode maps a config name ("heading", "async", ...) to a tab.
func ParseMode(name string) (AppMode, bool) {
	for _, m := range Modes() {
		if strings.EqualFold(m.String(), name) {
			return m, true
		}
	}
	return ModeHeading, false
}
