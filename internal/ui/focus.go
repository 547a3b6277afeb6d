package ui

// FocusManager tracks and rotates focus across a fixed set of IDs.
type FocusManager struct {
	Current  string   // ID of the focused element
	Order    []string // Rotation order
	OnChange func(from, to string)
}

// Next moves focus to the following ID, wrapping at the end.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the preceding ID, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.move(id)
	return true
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	i := f.index(f.Current)
	if i < 0 {
		// Unknown current: Next lands on the first ID, Prev on the last.
		i = 0
		if delta > 0 {
			i = n - 1
		}
	}
	f.move(f.Order[((i+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
