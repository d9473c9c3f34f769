package blogdrown

import (
	"context"

	"github.com/blogdrown/blogdrown-go/internal/api"
	"github.com/blogdrown/blogdrown-go/internal/types"
	"github.com/blogdrown/blogdrown-go/store"
)

func sessionUserFromAuth(u types.AuthUser) store.SessionUser {
	return store.SessionUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Login authenticates with email and password and installs the session user
// in the store. A structured rejection (bad credentials, validation) comes
// back as an *APIError and leaves the store untouched.
func (c *Client) Login(ctx context.Context, req LoginRequest) (user store.SessionUser, err error) {
	defer func() { observeRequest("login", err) }()
	res, err := api.Login(ctx, c.http, c.baseURL, req)
	if err != nil {
		return store.SessionUser{}, err
	}
	user = sessionUserFromAuth(*res)
	c.store.Update(func(tx *store.Tx) { tx.SetSession(user) })
	return user, nil
}

// Signup registers a new account and installs the session user in the store.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (user store.SessionUser, err error) {
	defer func() { observeRequest("signup", err) }()
	res, err := api.Signup(ctx, c.http, c.baseURL, req)
	if err != nil {
		return store.SessionUser{}, err
	}
	user = sessionUserFromAuth(*res)
	c.store.Update(func(tx *store.Tx) { tx.SetSession(user) })
	return user, nil
}

// Logout ends the server-side session. The local session state and follow
// set are cleared even when the request fails; the cookie may already be
// invalid server-side.
func (c *Client) Logout(ctx context.Context) (err error) {
	defer func() { observeRequest("logout", err) }()
	err = api.Logout(ctx, c.http, c.baseURL)
	c.store.Update(func(tx *store.Tx) { tx.RemoveSession() })
	return err
}

// FetchSession asks the backend who owns the current session cookie and
// installs the answer in the store. When the backend reports no session the
// store is left untouched and ErrNoSession is returned.
func (c *Client) FetchSession(ctx context.Context) (err error) {
	defer func() { observeRequest("fetch_session", err) }()
	res, err := api.Session(ctx, c.http, c.baseURL)
	if err != nil {
		return err
	}
	if res == nil {
		return ErrNoSession
	}
	user := sessionUserFromAuth(*res)
	c.store.Update(func(tx *store.Tx) { tx.SetSession(user) })
	return nil
}
