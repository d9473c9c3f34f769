package types

// ------------------------------
// Wire Domain Shapes
// ------------------------------

// MinUser is the minimal user shape embedded in post and comment payloads.
type MinUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthUser is the authenticated-session user shape returned by the auth
// endpoints.
type AuthUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// PostListItem is one element of the GET /blogs response. The body carries
// only a truncated preview.
type PostListItem struct {
	ID          string  `json:"id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	Title       string  `json:"title"`
	TitleNorm   string  `json:"title_norm"`
	PartialBody string  `json:"partial_body"`
	User        MinUser `json:"user"`
}

// PostDetail is the GET /blogs/one response: the full body plus the post's
// comments with embedded authors.
type PostDetail struct {
	ID        string        `json:"id"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
	Title     string        `json:"title"`
	TitleNorm string        `json:"title_norm"`
	Body      string        `json:"body"`
	User      MinUser       `json:"user"`
	Comments  []CommentItem `json:"comments"`
}

// CommentItem is a comment as embedded in PostDetail.
type CommentItem struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	PostID    string  `json:"post_id"`
	Author    MinUser `json:"author"`
	Body      string  `json:"body"`
}
