package api

import (
	"context"
	"net/http"

	"github.com/blogdrown/blogdrown-go/internal/types"
)

// Login authenticates with email and password. The backend sets the session
// cookie on the shared http.Client's jar.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.AuthUser, error) {
	var user types.AuthUser
	if err := sendJSON(ctx, httpClient, http.MethodPost, apiURL(baseURL, "/auth/login"), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Signup registers a new account and establishes a session.
func Signup(ctx context.Context, httpClient *http.Client, baseURL string, req types.SignupRequest) (*types.AuthUser, error) {
	var user types.AuthUser
	if err := sendJSON(ctx, httpClient, http.MethodPost, apiURL(baseURL, "/auth/signup"), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout tears down the server-side session.
func Logout(ctx context.Context, httpClient *http.Client, baseURL string) error {
	return dataless(ctx, httpClient, http.MethodPost, apiURL(baseURL, "/auth/logout"))
}

// Session returns the currently authenticated user, or nil when the backend
// reports no session (a JSON null body).
func Session(ctx context.Context, httpClient *http.Client, baseURL string) (*types.AuthUser, error) {
	var user *types.AuthUser
	if err := getJSON(ctx, httpClient, apiURL(baseURL, "/auth"), &user); err != nil {
		return nil, err
	}
	return user, nil
}
