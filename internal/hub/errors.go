package hub

import (
	"errors"
	"fmt"
)

// ErrCountryNotFound is returned when no Hub country matches the
// requested ISO code.
var ErrCountryNotFound = errors.New("country not found")

// AuthError is returned when the token endpoint rejects the client
// credentials. Code and Detail carry the provider's error fields when
// the response body could be parsed.
type AuthError struct {
	Status int
	Code   string
	Detail string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf(
		"token request failed (status %d): %s - %s",
		e.Status, e.Code, e.Detail,
	)
}

// APIError is returned for any non-2xx response from a Hub API endpoint,
// or for a 2xx response whose body does not match the documented shape.
// Body holds the raw response for diagnostics.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Hub API error (status %d): %s", e.Status, e.Body)
}

// NetworkError is returned when a request cannot be completed at the
// transport level (timeout, DNS failure, connection refused).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
