package ui

import (
	"fmt"
	"strings"

	"widgetlab/internal/resource"
	"widgetlab/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model. It hosts one widget per AppMode and switches
// between them.
type AppModel struct {
	Mode       AppMode
	Heading    *HeadingView
	Counter    *CounterView
	Callbacks  *CallbackInputView
	Favourite  *FavouriteInputView
	Animals    *AnimalListView
	Async      *AsyncView // nil until the Async tab is first shown
	Fetcher    resource.Fetcher
	KeyHandler *KeyHandler

	// LastFavourite is the latest value reported by the favourite input.
	LastFavourite string
	// FavouriteChanges counts OnChange calls from the favourite input.
	FavouriteChanges int

	spinner spinner.Model
	width   int // terminal columns; 0 until the first WindowSizeMsg
}

// maxEchoWidth caps the favourite value echoed under the input.
const maxEchoWidth = 32

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model starting on mode. The async widget
// uses fetcher.
func NewAppModel(fetcher resource.Fetcher, mode AppMode) *AppModel {
	a := &AppModel{
		Mode:      mode,
		Heading:   NewHeadingView(),
		Counter:   NewCounterView(),
		Callbacks: NewCallbackInputView(),
		Animals:   NewAnimalListView(),
		Fetcher:   fetcher,
	}
	a.Favourite = NewFavouriteInputView(func(v string) {
		a.LastFavourite = v
		a.FavouriteChanges++
	})

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("tab", shiftModeCmd(1), "Next tab")
	reg.BindWithDesc("shift+tab", shiftModeCmd(-1), "Previous tab")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for i, m := range Modes() {
		reg.BindWithDesc(fmt.Sprintf("SPC %d", i+1), selectModeCmd(m), m.String())
	}
	reg.BindWithDescForMode("SPC r", func() tea.Msg { return RemountAsyncMsg{} }, "Reload user", []AppMode{ModeAsync})
	a.KeyHandler = NewKeyHandler(reg)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Spinner
	a.spinner = s
	return a
}

func shiftModeCmd(delta int) tea.Cmd {
	return func() tea.Msg { return ShiftModeMsg{Delta: delta} }
}

func selectModeCmd(m AppMode) tea.Cmd {
	return func() tea.Msg { return SelectModeMsg{Mode: m} }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// CurrentView returns the widget for the active mode.
func (a *AppModel) CurrentView() View {
	switch a.Mode {
	case ModeCounter:
		return a.Counter
	case ModeCallbacks:
		return a.Callbacks
	case ModeFavourite:
		return a.Favourite
	case ModeList:
		return a.Animals
	case ModeAsync:
		if a.Async != nil {
			return a.Async
		}
	}
	return a.Heading
}

// asyncLoading reports whether the async widget is waiting for its fetch.
func (a *AppModel) asyncLoading() bool {
	return a.Async != nil && a.Async.Loading()
}

// enter switches to mode and runs the widget's Init. The async widget is
// mounted on first visit; its Init is idempotent, so revisits issue no
// request.
func (a *AppModel) enter(mode AppMode) tea.Cmd {
	a.Mode = mode
	a.KeyHandler.Reset()
	if mode == ModeAsync && a.Async == nil {
		return a.mountAsync()
	}
	return a.CurrentView().Init()
}

// mountAsync replaces the async widget with a fresh instance.
func (a *AppModel) mountAsync() tea.Cmd {
	if a.Async != nil {
		a.Async.Close()
	}
	a.Async = NewAsyncView(a.Fetcher)
	return tea.Batch(a.Async.Init(), a.spinner.Tick)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.enter(a.Mode)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.Animals.SetSize(msg.Width, max(msg.Height-8, 5))
		return a, nil
	case SelectModeMsg:
		return a, a.enter(msg.Mode)
	case ShiftModeMsg:
		return a, a.enter(a.Mode.Shift(msg.Delta))
	case RemountAsyncMsg:
		a.Mode = ModeAsync
		return a, a.mountAsync()
	case UserFetchedMsg:
		// Routed regardless of the active tab; stale instances never see it.
		if a.Async != nil {
			a.Async.Update(msg)
		}
		return a, nil
	case spinner.TickMsg:
		if !a.asyncLoading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
			return a, cmd
		}
	}

	_, cmd := a.CurrentView().Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.renderTabs() + "\n\n")
	b.WriteString(a.CurrentView().View() + "\n")
	if a.Mode == ModeFavourite && a.FavouriteChanges > 0 {
		b.WriteString("\n" + Styles.Muted.Render(fmt.Sprintf("onChange(%q) x%d", textutil.Truncate(a.LastFavourite, maxEchoWidth), a.FavouriteChanges)) + "\n")
	}
	if help := RenderKeybindHelp(a.KeyHandler, a.Mode); help != "" {
		b.WriteString("\n" + help)
	} else {
		b.WriteString("\n" + RenderFooter(a.Mode))
	}
	return textutil.ClipStyled(b.String(), a.width)
}

func (a *AppModel) renderTabs() string {
	tabs := make([]string, 0, len(Modes())+1)
	for i, m := range Modes() {
		label := fmt.Sprintf("%d %s", i+1, m)
		if m == a.Mode {
			tabs = append(tabs, Styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, Styles.Tab.Render(label))
		}
	}
	if a.asyncLoading() {
		tabs = append(tabs, a.spinner.View())
	}
	return strings.Join(tabs, "  ")
}
