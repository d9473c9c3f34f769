package types

// ------------------------------
// Response Types
// ------------------------------

// NewPostResponse is the POST /blogs success shape. Title and body are not
// echoed back; callers already hold them.
type NewPostResponse struct {
	ID        string `json:"id"`
	TitleNorm string `json:"title_norm"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewCommentResponse is the POST /blogs/{id}/comments success shape.
type NewCommentResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UpdatedResponse is returned by the PUT endpoints.
type UpdatedResponse struct {
	UpdatedAt string `json:"updated_at"`
}

// FollowListResponse wraps the GET /follows result.
type FollowListResponse struct {
	Users []MinUser `json:"users"`
}
