package types

import "fmt"

// The backend owns real validation; these checks only reject requests that
// could never be routed (empty path segments and the like).

// ValidateIDPresent ensures an identifier path/query parameter is non-empty.
func ValidateIDPresent(id, name string) error {
	if id == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	return nil
}
