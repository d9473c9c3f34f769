package blogdrown

import (
	"context"

	"github.com/blogdrown/blogdrown-go/internal/api"
	"github.com/blogdrown/blogdrown-go/internal/types"
	"github.com/blogdrown/blogdrown-go/store"
)

// Wire-to-store translation. List items carry only a body preview; single
// fetches carry the full body.

func postFromListItem(it types.PostListItem) store.Post {
	return store.Post{
		ID:              it.ID,
		Title:           it.Title,
		NormalizedTitle: it.TitleNorm,
		OwnerID:         it.User.ID,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
		Text:            it.PartialBody,
		Partial:         true,
	}
}

func postFromDetail(d *types.PostDetail) store.Post {
	return store.Post{
		ID:              d.ID,
		Title:           d.Title,
		NormalizedTitle: d.TitleNorm,
		OwnerID:         d.User.ID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		Text:            d.Body,
		Partial:         false,
	}
}

func userFromMin(u types.MinUser) store.User {
	return store.User{ID: u.ID, Username: u.Username}
}

// RefreshPosts fetches the full post list and bulk-upserts it together with
// the embedded authors. Already-loaded full bodies survive the partial
// refresh (see store.Tx.LoadPosts).
func (c *Client) RefreshPosts(ctx context.Context) (err error) {
	defer func() { observeRequest("refresh_posts", err) }()
	items, err := api.ListPosts(ctx, c.http, c.baseURL)
	if err != nil {
		return err
	}

	posts := make([]store.Post, 0, len(items))
	authors := make([]store.User, 0, len(items))
	for _, it := range items {
		posts = append(posts, postFromListItem(it))
		authors = append(authors, userFromMin(it.User))
	}

	c.store.Update(func(tx *store.Tx) {
		tx.LoadPosts(posts)
		tx.AddUsers(authors)
	})
	return nil
}

// FetchPost fetches one post with its full body and comments, upserting the
// post, its comments, and every embedded author in a single batch so views
// never need a separate author fetch.
func (c *Client) FetchPost(ctx context.Context, postID string) (err error) {
	defer func() { observeRequest("fetch_post", err) }()
	detail, err := api.GetPost(ctx, c.http, c.baseURL, postID)
	if err != nil {
		return err
	}

	post := postFromDetail(detail)
	users := make([]store.User, 0, len(detail.Comments)+1)
	comments := make([]store.Comment, 0, len(detail.Comments))
	for _, ci := range detail.Comments {
		users = append(users, userFromMin(ci.Author))
		comments = append(comments, commentFromItem(ci))
	}
	users = append(users, userFromMin(detail.User))

	c.store.Update(func(tx *store.Tx) {
		tx.LoadPost(post)
		tx.AddUsers(users)
		tx.AddComments(comments)
	})
	return nil
}

// CreatePost publishes a new post and inserts it locally under the
// server-assigned id, with the session user as owner. Requires an
// authenticated session.
func (c *Client) CreatePost(ctx context.Context, req NewPostRequest) (post store.Post, err error) {
	defer func() { observeRequest("create_post", err) }()
	owner, ok := c.store.SessionUser()
	if !ok {
		return store.Post{}, ErrNoSession
	}

	res, err := api.CreatePost(ctx, c.http, c.baseURL, req)
	if err != nil {
		return store.Post{}, err
	}

	post = store.Post{
		ID:              res.ID,
		Title:           req.Title,
		NormalizedTitle: res.TitleNorm,
		OwnerID:         owner.ID,
		CreatedAt:       res.CreatedAt,
		UpdatedAt:       res.UpdatedAt,
		Text:            req.Body,
		Partial:         false,
	}
	c.store.Update(func(tx *store.Tx) { tx.LoadPost(post) })
	return post, nil
}

// UpdatePost replaces a post's body and mirrors the edit into the store.
func (c *Client) UpdatePost(ctx context.Context, postID, body string) (err error) {
	defer func() { observeRequest("update_post", err) }()
	res, err := api.UpdatePost(ctx, c.http, c.baseURL, postID, types.UpdateBodyRequest{Body: body})
	if err != nil {
		return err
	}
	c.store.Update(func(tx *store.Tx) { tx.EditPost(postID, res.UpdatedAt, body) })
	return nil
}

// DeletePost removes the post server-side. The cached entry is left in
// place; consumers navigate away from deleted posts rather than observing
// their removal.
func (c *Client) DeletePost(ctx context.Context, postID string) (err error) {
	defer func() { observeRequest("delete_post", err) }()
	return api.DeletePost(ctx, c.http, c.baseURL, postID)
}
