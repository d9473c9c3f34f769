package blogdrown

import (
	"context"

	"github.com/blogdrown/blogdrown-go/internal/api"
	"github.com/blogdrown/blogdrown-go/internal/types"
	"github.com/blogdrown/blogdrown-go/store"
)

func commentFromItem(ci types.CommentItem) store.Comment {
	return store.Comment{
		ID:        ci.ID,
		PostID:    ci.PostID,
		AuthorID:  ci.Author.ID,
		Text:      ci.Body,
		CreatedAt: ci.CreatedAt,
		UpdatedAt: ci.UpdatedAt,
	}
}

// CreateComment posts a comment under postID and inserts it locally under
// the server-assigned id, authored by the session user. Requires an
// authenticated session. A validation rejection (for example a too-short
// body) comes back as an *APIError with a field message under "body" and
// leaves the store untouched.
func (c *Client) CreateComment(ctx context.Context, postID, body string) (comment store.Comment, err error) {
	defer func() { observeRequest("create_comment", err) }()
	author, ok := c.store.SessionUser()
	if !ok {
		return store.Comment{}, ErrNoSession
	}

	res, err := api.CreateComment(ctx, c.http, c.baseURL, postID, types.UpdateBodyRequest{Body: body})
	if err != nil {
		return store.Comment{}, err
	}

	comment = store.Comment{
		ID:        res.ID,
		PostID:    postID,
		AuthorID:  author.ID,
		Text:      body,
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}
	c.store.Update(func(tx *store.Tx) { tx.AddComments([]store.Comment{comment}) })
	return comment, nil
}

// UpdateComment replaces a comment's body and mirrors the edit into the
// store.
func (c *Client) UpdateComment(ctx context.Context, commentID, body string) (err error) {
	defer func() { observeRequest("update_comment", err) }()
	res, err := api.UpdateComment(ctx, c.http, c.baseURL, commentID, types.UpdateBodyRequest{Body: body})
	if err != nil {
		return err
	}
	c.store.Update(func(tx *store.Tx) { tx.EditComment(commentID, res.UpdatedAt, body) })
	return nil
}

// DeleteComment removes the comment server-side and drops the cached entry.
func (c *Client) DeleteComment(ctx context.Context, commentID string) (err error) {
	defer func() { observeRequest("delete_comment", err) }()
	if err = api.DeleteComment(ctx, c.http, c.baseURL, commentID); err != nil {
		return err
	}
	c.store.Update(func(tx *store.Tx) { tx.DeleteComment(commentID) })
	return nil
}
