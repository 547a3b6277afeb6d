// Package loader implements a one-shot remote resource loader.
//
// A Loader starts in Loading, issues its fetch at most once, and settles
// into Loaded or Failed. Both are terminal: a new request needs a new
// Loader. Completions that arrive after Teardown, or after the loader has
// already settled, are ignored.
//
// The loader has no view dependencies. Callers with an event loop use
// Activate, Fetch and Settle separately so the fetch can run off-loop and
// the result can be applied on-loop; other callers use Start.
package loader

import (
	"context"
	"sync"
)

// Func fetches the resource.
type Func[T any] func(ctx context.Context) (T, error)

// Result is the outcome of one fetch. Err is empty on success.
type Result[T any] struct {
	Value T
	Err   string
}

// Failed reports whether the fetch failed.
func (r Result[T]) Failed() bool { return r.Err != "" }

// Loader owns the load request state of a single widget instance.
type Loader[T any] struct {
	fetch Func[T]

	mu        sync.Mutex
	state     State[T]
	activated bool
	alive     bool
	done      chan struct{}
}

// New returns a loader in Loading that will call fetch on activation.
func New[T any](fetch Func[T]) *Loader[T] {
	return &Loader[T]{
		fetch: fetch,
		state: Loading[T](),
		alive: true,
		done:  make(chan struct{}),
	}
}

// Activate marks the loader as started. It returns true exactly once per
// instance; the caller that receives true is responsible for the fetch.
// A torn-down loader never activates.
func (l *Loader[T]) Activate() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.activated || !l.alive {
		return false
	}
	l.activated = true
	return true
}

// Fetch runs the fetch function and converts any error or panic into a
// failure message. It does not change the loader state.
func (l *Loader[T]) Fetch(ctx context.Context) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[T]{Err: Message(r)}
		}
	}()
	if l.fetch == nil {
		return Result[T]{Err: "no fetch function"}
	}
	v, err := l.fetch(ctx)
	if err != nil {
		return Result[T]{Err: Message(err)}
	}
	return Result[T]{Value: v}
}

// Settle applies a completion. It returns false, leaving the state
// untouched, when the loader was torn down or has already settled.
func (l *Loader[T]) Settle(res Result[T]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.alive || l.state.Status().Terminal() {
		return false
	}
	if res.Failed() {
		l.state = Failed[T](res.Err)
	} else {
		l.state = Loaded(res.Value)
	}
	close(l.done)
	return true
}

// Start activates the loader and runs the fetch on its own goroutine.
// It returns false if the loader had already been activated.
func (l *Loader[T]) Start(ctx context.Context) bool {
	if !l.Activate() {
		return false
	}
	go func() {
		l.Settle(l.Fetch(ctx))
	}()
	return true
}

// Teardown clears the liveness flag. Later completions are dropped.
func (l *Loader[T]) Teardown() {
	l.mu.Lock()
	l.alive = false
	l.mu.Unlock()
}

// Alive reports whether the loader has not been torn down.
func (l *Loader[T]) Alive() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.alive
}

// Activated reports whether the fetch has been issued.
func (l *Loader[T]) Activated() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.activated
}

// State returns a snapshot of the current state.
func (l *Loader[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Done is closed when the loader reaches a terminal state. It stays open
// forever if the loader is torn down first or the fetch never returns.
func (l *Loader[T]) Done() <-chan struct{} {
	return l.done
}
