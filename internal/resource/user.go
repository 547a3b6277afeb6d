// Package resource fetches the remote user record shown by the async widget.
package resource

import "context"

// DefaultUserURL is the fixed address of the user record.
const DefaultUserURL = "https://jsonplaceholder.typicode.com/users/1"

// User is the record served at DefaultUserURL. Only Name and Email are
// required.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Fetcher retrieves the user record.
type Fetcher interface {
	FetchUser(ctx context.Context) (User, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) (User, error)

// FetchUser implements Fetcher.
func (f FetcherFunc) FetchUser(ctx context.Context) (User, error) {
	return f(ctx)
}
