package blogdrown

import (
	"context"

	"github.com/blogdrown/blogdrown-go/internal/api"
	"github.com/blogdrown/blogdrown-go/store"
)

// Follow subscribes the session user to an author and records the
// membership locally. Membership is independent of whether the author's
// posts are loaded.
func (c *Client) Follow(ctx context.Context, userID string) (err error) {
	defer func() { observeRequest("follow", err) }()
	if err = api.Follow(ctx, c.http, c.baseURL, userID); err != nil {
		return err
	}
	c.store.Update(func(tx *store.Tx) { tx.AddFollow(userID) })
	return nil
}

// Unfollow removes the subscription and the local membership.
func (c *Client) Unfollow(ctx context.Context, userID string) (err error) {
	defer func() { observeRequest("unfollow", err) }()
	if err = api.Unfollow(ctx, c.http, c.baseURL, userID); err != nil {
		return err
	}
	c.store.Update(func(tx *store.Tx) { tx.RemoveFollow(userID) })
	return nil
}

// RefreshFollows fetches the followed-author list, bulk-inserting the
// memberships and upserting the author records in one batch.
func (c *Client) RefreshFollows(ctx context.Context) (err error) {
	defer func() { observeRequest("refresh_follows", err) }()
	users, err := api.ListFollows(ctx, c.http, c.baseURL)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(users))
	authors := make([]store.User, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
		authors = append(authors, userFromMin(u))
	}

	c.store.Update(func(tx *store.Tx) {
		tx.AddFollows(ids)
		tx.AddUsers(authors)
	})
	return nil
}
