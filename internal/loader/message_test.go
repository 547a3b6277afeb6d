package loader

import (
	"errors"
	"fmt"
	"testing"
)

type apiStatus struct{ code int }

func (s apiStatus) String() string { return fmt.Sprintf("status %d", s.code) }

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"error", errors.New("API is down"), "API is down"},
		{"wrapped error", fmt.Errorf("fetch user: %w", errors.New("API is down")), "fetch user: API is down"},
		{"string", "API is down", "API is down"},
		{"stringer", apiStatus{code: 503}, "status 503"},
		{"nil", nil, UnknownFailure},
		{"empty string", "", UnknownFailure},
		{"int", 42, "42"},
		{"map without message field", map[string]int{"code": 1}, "map[code:1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.in); got != tt.want {
				t.Errorf("Message(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
