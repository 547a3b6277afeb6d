package resource

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus is wrapped by FetchError when the server answers
// with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// FetchError is the single failure kind of a user fetch. Op is one of
// "request", "status" or "decode".
type FetchError struct {
	Op  string
	URL string
	Err error
}

// Error returns the cause text only; it is shown to the user verbatim.
func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// Detail includes the operation and address, for logs.
func (e *FetchError) Detail() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func statusError(code int, status string) error {
	if status == "" {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, code)
	}
	return fmt.Errorf("%w: %s", ErrUnexpectedStatus, status)
}
