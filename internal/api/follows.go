package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/blogdrown/blogdrown-go/internal/types"
)

// Follow subscribes the session user to the given author.
func Follow(ctx context.Context, httpClient *http.Client, baseURL, userID string) error {
	if err := types.ValidateIDPresent(userID, "userId"); err != nil {
		return err
	}
	return dataless(ctx, httpClient, http.MethodPost, apiURL(baseURL, "/follows/"+url.PathEscape(userID)))
}

// Unfollow removes the subscription to the given author.
func Unfollow(ctx context.Context, httpClient *http.Client, baseURL, userID string) error {
	if err := types.ValidateIDPresent(userID, "userId"); err != nil {
		return err
	}
	return dataless(ctx, httpClient, http.MethodDelete, apiURL(baseURL, "/follows/"+url.PathEscape(userID)))
}

// ListFollows retrieves the authors followed by the session user.
func ListFollows(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.MinUser, error) {
	var res types.FollowListResponse
	if err := getJSON(ctx, httpClient, apiURL(baseURL, "/follows"), &res); err != nil {
		return nil, err
	}
	return res.Users, nil
}
