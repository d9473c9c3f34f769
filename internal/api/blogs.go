package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/blogdrown/blogdrown-go/internal/types"
)

// ListPosts retrieves every post with a truncated body preview.
func ListPosts(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.PostListItem, error) {
	var items []types.PostListItem
	if err := getJSON(ctx, httpClient, apiURL(baseURL, "/blogs"), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetPost retrieves a single post with its full body and comments.
func GetPost(ctx context.Context, httpClient *http.Client, baseURL, postID string) (*types.PostDetail, error) {
	if err := types.ValidateIDPresent(postID, "postId"); err != nil {
		return nil, err
	}
	var detail types.PostDetail
	route := "/blogs/one?id=" + url.QueryEscape(postID)
	if err := getJSON(ctx, httpClient, apiURL(baseURL, route), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// CreatePost publishes a new post.
func CreatePost(ctx context.Context, httpClient *http.Client, baseURL string, req types.NewPostRequest) (*types.NewPostResponse, error) {
	var res types.NewPostResponse
	if err := sendJSON(ctx, httpClient, http.MethodPost, apiURL(baseURL, "/blogs"), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdatePost replaces the body of an existing post.
func UpdatePost(ctx context.Context, httpClient *http.Client, baseURL, postID string, req types.UpdateBodyRequest) (*types.UpdatedResponse, error) {
	if err := types.ValidateIDPresent(postID, "postId"); err != nil {
		return nil, err
	}
	var res types.UpdatedResponse
	route := "/blogs/" + url.PathEscape(postID)
	if err := sendJSON(ctx, httpClient, http.MethodPut, apiURL(baseURL, route), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeletePost removes a post.
func DeletePost(ctx context.Context, httpClient *http.Client, baseURL, postID string) error {
	if err := types.ValidateIDPresent(postID, "postId"); err != nil {
		return err
	}
	return dataless(ctx, httpClient, http.MethodDelete, apiURL(baseURL, "/blogs/"+url.PathEscape(postID)))
}
