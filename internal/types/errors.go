package types

import (
	"errors"
	"fmt"
)

// ------------------------------
// Shared Errors
// ------------------------------

// APIError is the structured error body the backend returns on non-2xx
// responses, paired with the HTTP status code. Field-level validation
// messages are keyed by field name ("body", "title", "email", ...).
type APIError struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	Status  int               `json:"-"`
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d): %s %v", e.Status, e.Message, e.Errors)
}

// Field returns the validation message for the named field, or "".
func (e *APIError) Field(name string) string { return e.Errors[name] }

// ErrNoSession is returned when an operation requires an authenticated
// session and none is established.
var ErrNoSession = errors.New("no active session")
