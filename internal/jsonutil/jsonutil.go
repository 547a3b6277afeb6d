// Package jsonutil provides shared helpers for decoding JSON response
// bodies: context-wrapped errors, object decoding and field validation.
package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMissingField is returned when a required string field is absent,
// not a string, or empty.
var ErrMissingField = errors.New("missing field")

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// ReadObject reads r to the end and decodes a single JSON object into T.
// The body must be an object; it is also decoded into a generic map so the
// caller can validate required fields with RequireStrings.
func ReadObject[T any](r io.Reader, context string) (T, map[string]interface{}, error) {
	var zero T
	data, err := io.ReadAll(r)
	if err != nil {
		return zero, nil, fmt.Errorf("%s: read body: %w", context, err)
	}
	var raw map[string]interface{}
	if err := UnmarshalWithContext(data, &raw, context); err != nil {
		return zero, nil, err
	}
	if raw == nil {
		return zero, nil, fmt.Errorf("%s: expected JSON object, got null", context)
	}
	var v T
	if err := UnmarshalWithContext(data, &v, context); err != nil {
		return zero, nil, err
	}
	return v, raw, nil
}

// RequireStrings checks that every key holds a non-empty string.
func RequireStrings(m map[string]interface{}, context string, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if GetString(m, k) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", context, ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// ToString converts an interface{} value to a string representation.
// Handles string, float64 (formatted as integer), bool, and other types.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
