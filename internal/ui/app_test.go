package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes cmd like the tea runtime would, feeding app messages back
// into m. Other messages (spinner ticks, cursor blink) are returned but not
// delivered, so no timer is ever rescheduled. Returns every message produced.
func runCmd(m tea.Model, cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var out []tea.Msg
	msg := cmd()
	out = append(out, msg)
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, runCmd(m, c)...)
		}
	case SelectModeMsg, ShiftModeMsg, RemountAsyncMsg, UserFetchedMsg:
		_, next := m.Update(msg)
		out = append(out, runCmd(m, next)...)
	}
	return out
}

// sendKey delivers a key and runs the resulting command. In text tabs an
// unbound key goes to the text input, whose command is a cursor blink
// timer; it is discarded without running.
func sendKey(m tea.Model, k string) []tea.Msg {
	a := m.(*appModelAdapter).AppModel
	msg := keyMsg(k)
	toInput := a.Mode.CapturesText() &&
		a.KeyHandler.Registry.LookupForMode(keyToSeqPart(msg.String()), a.Mode) == nil
	_, cmd := m.Update(msg)
	if toInput {
		return nil
	}
	return runCmd(m, cmd)
}

func newTestApp(f *fakeFetcher, mode AppMode) (*AppModel, tea.Model) {
	a := NewAppModel(f, mode)
	m := a.AsTeaModel()
	runCmd(m, m.Init())
	return a, m
}

func hasQuit(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func TestApp_StartsOnHeading(t *testing.T) {
	f := jack()
	a, m := newTestApp(f, ModeHeading)

	assert.Equal(t, ModeHeading, a.Mode)
	assert.Nil(t, a.Async, "async widget is mounted lazily")
	assert.Equal(t, int32(0), f.calls.Load())
	assert.Contains(t, render(m), HeadingInitial)
}

func TestApp_TabCyclesModes(t *testing.T) {
	a, m := newTestApp(jack(), ModeHeading)

	want := []AppMode{ModeCounter, ModeCallbacks, ModeFavourite, ModeList, ModeAsync, ModeHeading}
	for _, w := range want {
		sendKey(m, "tab")
		assert.Equal(t, w, a.Mode)
	}
	sendKey(m, "shift+tab")
	assert.Equal(t, ModeAsync, a.Mode)
}

func TestApp_LeaderSelectsMode(t *testing.T) {
	a, m := newTestApp(jack(), ModeHeading)

	sendKey(m, " ")
	assert.True(t, a.KeyHandler.LeaderWaiting)
	assert.Contains(t, render(m), "cancel", "leader help should be visible")

	sendKey(m, "2")
	assert.Equal(t, ModeCounter, a.Mode)
	assert.False(t, a.KeyHandler.LeaderWaiting)
}

func TestApp_KeysReachActiveWidget(t *testing.T) {
	a, m := newTestApp(jack(), ModeHeading)

	sendKey(m, "enter")
	assert.Equal(t, HeadingClicked, a.Heading.Headings()[0])

	sendKey(m, "tab")
	sendKey(m, "+")
	sendKey(m, "+")
	assert.Equal(t, 2, a.Counter.Count())
	assert.Contains(t, render(m), "2")
}

func TestApp_TextTabsReceiveSpacesAndLetters(t *testing.T) {
	a, m := newTestApp(jack(), ModeFavourite)

	for _, r := range "snow leopard q" {
		sendKey(m, string(r))
	}

	assert.Equal(t, "snow leopard q", a.Favourite.Value())
	assert.Equal(t, "snow leopard q", a.LastFavourite)
	assert.Equal(t, 14, a.FavouriteChanges)
	assert.False(t, a.KeyHandler.LeaderWaiting)
	assert.Contains(t, render(m), `onChange("snow leopard q") x14`)

	sendKey(m, "tab")
	assert.Equal(t, ModeList, a.Mode)
}

func TestApp_TypingDoesNotWaitOnCursorBlink(t *testing.T) {
	a, m := newTestApp(jack(), ModeCallbacks)

	start := time.Now()
	for _, r := range "a fairly long line of text" {
		sendKey(m, string(r))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, "a fairly long line of text", a.Callbacks.Value())
}

func TestApp_CallbacksTab(t *testing.T) {
	a, m := newTestApp(jack(), ModeCallbacks)
	for _, r := range "React" {
		sendKey(m, string(r))
	}
	assert.Equal(t, "React", a.Callbacks.Value())
}

func TestApp_AsyncFetchesOnFirstVisit(t *testing.T) {
	f := jack()
	a, m := newTestApp(f, ModeHeading)

	_, cmd := m.Update(SelectModeMsg{Mode: ModeAsync})
	require.NotNil(t, a.Async)
	assert.Equal(t, LoadingText+"\n", render(a.Async))
	assert.Contains(t, render(m), LoadingText)

	runCmd(m, cmd)
	assert.Contains(t, render(m), "Jack")
	assert.NotContains(t, render(m), LoadingText)
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestApp_AsyncRequestedOnceAcrossVisits(t *testing.T) {
	f := jack()
	a, m := newTestApp(f, ModeAsync)
	first := a.Async
	require.NotNil(t, first)

	for i := 0; i < 3; i++ {
		sendKey(m, "tab")
		sendKey(m, "shift+tab")
		_ = render(m)
	}

	assert.Same(t, first, a.Async)
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestApp_RemountIssuesFreshRequest(t *testing.T) {
	f := &fakeFetcher{err: errors.New("API is down")}
	a, m := newTestApp(f, ModeAsync)
	assert.Contains(t, render(m), "API is down")
	old := a.Async

	f.err = nil
	f.user.Name = "Jack"
	f.user.Email = "jack@email.com"
	sendKey(m, " ")
	sendKey(m, "r")

	assert.NotSame(t, old, a.Async)
	assert.False(t, old.Loading())
	assert.False(t, a.Async.Loading())
	assert.Contains(t, render(m), "Jack")
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestApp_StaleCompletionAfterRemount(t *testing.T) {
	f := jack()
	a := NewAppModel(f, ModeAsync)
	m := a.AsTeaModel()

	// Capture the first instance's completion without delivering it.
	initCmd := m.Init()
	old := a.Async
	_, remount := m.Update(RemountAsyncMsg{})
	fresh := a.Async
	require.NotSame(t, old, fresh)

	var stale UserFetchedMsg
	for _, msg := range runCmd(noopModel{}, initCmd) {
		if fm, ok := msg.(UserFetchedMsg); ok {
			stale = fm
		}
	}
	require.Equal(t, old.ID(), stale.InstanceID)

	m.Update(stale)
	assert.True(t, fresh.Loading(), "stale completion must not reach the new instance")
	assert.True(t, old.Loading(), "torn-down instance must not settle")

	runCmd(m, remount)
	assert.False(t, fresh.Loading())
}

func TestApp_SpinnerOnlyWhileLoading(t *testing.T) {
	a := NewAppModel(jack(), ModeAsync)
	m := a.AsTeaModel()
	cmd := m.Init()
	loading := render(m)

	runCmd(m, cmd)
	done := render(m)

	assert.NotEqual(t, strings.Split(loading, "\n")[0], strings.Split(done, "\n")[0], "header should drop the spinner")
}

func TestApp_Quit(t *testing.T) {
	_, m := newTestApp(jack(), ModeFavourite)
	assert.True(t, hasQuit(sendKey(m, "ctrl+c")))

	_, m = newTestApp(jack(), ModeCounter)
	sendKey(m, " ")
	assert.True(t, hasQuit(sendKey(m, "q")))
}

func TestApp_WindowSize(t *testing.T) {
	a, m := newTestApp(jack(), ModeList)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	for _, animal := range Animals {
		assert.Contains(t, render(m), animal)
	}
	assert.Equal(t, ModeList, a.Mode)
}

// noopModel swallows messages; used to run commands without an app.
type noopModel struct{}

func (noopModel) Init() tea.Cmd                       { return nil }
func (noopModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return noopModel{}, nil }
func (noopModel) View() string                        { return "" }
