package ui

import (
	"context"
	"log"

	"widgetlab/internal/loader"
	"widgetlab/internal/resource"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// LoadingText is the only output while the request is outstanding.
const LoadingText = "Loading..."

// AsyncView fetches the user record once, on its first Init, and renders
// exactly one of: LoadingText, the failure message, or name and email.
type AsyncView struct {
	id     uuid.UUID
	ctx    context.Context
	loader *loader.Loader[resource.User]
}

// Ensure AsyncView implements View.
var _ View = (*AsyncView)(nil)

// NewAsyncView creates an instance bound to fetcher. Nothing is fetched
// until Init.
func NewAsyncView(fetcher resource.Fetcher) *AsyncView {
	var fetch loader.Func[resource.User]
	if fetcher != nil {
		fetch = fetcher.FetchUser
	}
	return &AsyncView{
		id:     uuid.New(),
		ctx:    context.Background(),
		loader: loader.New(fetch),
	}
}

// ID identifies this instance in UserFetchedMsg.
func (v *AsyncView) ID() uuid.UUID {
	return v.id
}

// State returns the load request state.
func (v *AsyncView) State() loader.State[resource.User] {
	return v.loader.State()
}

// Loading reports whether the view still shows LoadingText.
func (v *AsyncView) Loading() bool {
	return v.loader.State().Status() == loader.StatusLoading
}

// Close tears the instance down; a completion arriving later is dropped.
func (v *AsyncView) Close() {
	v.loader.Teardown()
	log.Printf("async %s: closed in state %s", v.short(), v.loader.State().Status())
}

// Init implements View. Only the first call issues the request.
func (v *AsyncView) Init() tea.Cmd {
	if !v.loader.Activate() {
		return nil
	}
	log.Printf("async %s: fetching user", v.short())
	return fetchUserCmd(v.ctx, v.id, v.loader)
}

// fetchUserCmd runs the fetch off the event loop and reports the result.
func fetchUserCmd(ctx context.Context, id uuid.UUID, l *loader.Loader[resource.User]) tea.Cmd {
	return func() tea.Msg {
		return UserFetchedMsg{InstanceID: id, Result: l.Fetch(ctx)}
	}
}

// Update implements View.
func (v *AsyncView) Update(msg tea.Msg) (View, tea.Cmd) {
	fetched, ok := msg.(UserFetchedMsg)
	if !ok || fetched.InstanceID != v.id {
		return v, nil
	}
	if !v.loader.Settle(fetched.Result) {
		log.Printf("async %s: dropped completion (alive=%v, state=%s)", v.short(), v.loader.Alive(), v.loader.State().Status())
		return v, nil
	}
	if fetched.Result.Failed() {
		log.Printf("async %s: failed: %s", v.short(), fetched.Result.Err)
	} else {
		log.Printf("async %s: loaded user %q", v.short(), fetched.Result.Value.Name)
	}
	return v, nil
}

// View implements View.
func (v *AsyncView) View() string {
	s := v.loader.State()
	switch s.Status() {
	case loader.StatusLoaded:
		u, _ := s.Value()
		return Styles.Heading.Render(u.Name) + "\n" + Styles.Label.Render(u.Email)
	case loader.StatusFailed:
		msg, _ := s.Message()
		return Styles.Error.Render(msg)
	default:
		return LoadingText
	}
}

func (v *AsyncView) short() string {
	return v.id.String()[:8]
}
