package blogdrown

import "github.com/blogdrown/blogdrown-go/internal/types"

// Public type aliases so SDK consumers can import only the blogdrown
// package.
type (
	// Requests
	LoginRequest   = types.LoginRequest
	SignupRequest  = types.SignupRequest
	NewPostRequest = types.NewPostRequest

	// Wire shapes surfaced to callers
	AuthUser = types.AuthUser
	MinUser  = types.MinUser
)

// Errors re-exported in errors.go
