package loader

import "fmt"

// UnknownFailure is shown when a failure carries no usable text.
const UnknownFailure = "unknown error"

// Message converts an arbitrary failure value into display text.
// Errors and Stringers use their own text; nil and empty values yield
// UnknownFailure.
func Message(v any) string {
	var s string
	switch val := v.(type) {
	case nil:
		return UnknownFailure
	case error:
		s = val.Error()
	case string:
		s = val
	case fmt.Stringer:
		s = val.String()
	default:
		s = fmt.Sprint(val)
	}
	if s == "" {
		return UnknownFailure
	}
	return s
}
