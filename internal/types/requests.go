package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest holds parameters for POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewPostRequest holds parameters for POST /blogs.
type NewPostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UpdateBodyRequest carries the replacement body for PUT /blogs/{id} and
// PUT /comments/{id}.
type UpdateBodyRequest struct {
	Body string `json:"body"`
}
