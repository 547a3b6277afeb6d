package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// AnimalListClass names the list's style class.
const AnimalListClass = "animals"

// Animals is the fixed list content.
var Animals = []string{"Lion", "Tiger", "Elephant", "Giraffe", "Zebra"}

// animalItem implements list.Item.
type animalItem string

func (a animalItem) FilterValue() string { return string(a) }
func (a animalItem) Title() string       { return string(a) }
func (a animalItem) Description() string { return "" }

// AnimalListView renders Animals as a navigable list.
type AnimalListView struct {
	list list.Model
}

// Ensure AnimalListView implements View.
var _ View = (*AnimalListView)(nil)

// NewAnimalListView creates the list.
func NewAnimalListView() *AnimalListView {
	items := make([]list.Item, len(Animals))
	for i, a := range Animals {
		items[i] = animalItem(a)
	}
	l := list.New(items, NewCompactListDelegate(), 40, 12)
	l.Title = "Animals"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Heading
	return &AnimalListView{list: l}
}

// Class returns the style class of the list element.
func (a *AnimalListView) Class() string {
	return AnimalListClass
}

// Items returns the rendered item titles.
func (a *AnimalListView) Items() []string {
	out := make([]string, 0, len(a.list.Items()))
	for _, it := range a.list.Items() {
		out = append(out, it.FilterValue())
	}
	return out
}

// Selected returns the highlighted animal.
func (a *AnimalListView) Selected() string {
	if it := a.list.SelectedItem(); it != nil {
		return it.FilterValue()
	}
	return ""
}

// SetSize resizes the list.
func (a *AnimalListView) SetSize(width, height int) {
	a.list.SetSize(width, height)
}

// Init implements View.
func (a *AnimalListView) Init() tea.Cmd {
	return nil
}

// Update implements View. list.Model handles j/k/g/G navigation.
func (a *AnimalListView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// View implements View.
func (a *AnimalListView) View() string {
	return a.list.View()
}
