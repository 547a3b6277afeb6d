package loader

// Status identifies which member of a State is active.
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can leave s.
func (s Status) Terminal() bool {
	return s == StatusLoaded || s == StatusFailed
}

// State is the load request state: exactly one of Loading, Loaded (with a
// value) or Failed (with a message) holds. The zero value is Loading.
type State[T any] struct {
	status Status
	value  T
	msg    string
}

// Loading returns the initial state.
func Loading[T any]() State[T] {
	return State[T]{status: StatusLoading}
}

// Loaded returns a terminal state holding v.
func Loaded[T any](v T) State[T] {
	return State[T]{status: StatusLoaded, value: v}
}

// Failed returns a terminal state holding a display message.
func Failed[T any](msg string) State[T] {
	return State[T]{status: StatusFailed, msg: msg}
}

// Status returns the active member.
func (s State[T]) Status() Status { return s.status }

// Value returns the loaded value; ok is false unless the state is Loaded.
func (s State[T]) Value() (v T, ok bool) {
	if s.status != StatusLoaded {
		return v, false
	}
	return s.value, true
}

// Message returns the failure message; ok is false unless the state is Failed.
func (s State[T]) Message() (string, bool) {
	if s.status != StatusFailed {
		return "", false
	}
	return s.msg, true
}
