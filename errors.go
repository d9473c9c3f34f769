package blogdrown

import (
	"errors"

	"github.com/blogdrown/blogdrown-go/internal/types"
)

// APIError is the structured error the backend returns on a rejected
// request: a message, per-field validation messages, and the HTTP status.
// Operations return it as an ordinary error value; the store is never
// mutated on an API error. Anything that is not an APIError is a transport
// or programming fault and simply propagates.
type APIError = types.APIError

// ErrNoSession is returned by operations that require an authenticated
// session when none is established, and by FetchSession when the backend
// reports no current session.
var ErrNoSession = types.ErrNoSession

// AsAPIError reports whether err carries a structured API error and returns
// it for display.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
