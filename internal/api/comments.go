package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/blogdrown/blogdrown-go/internal/types"
)

// CreateComment posts a new comment under the given post.
func CreateComment(ctx context.Context, httpClient *http.Client, baseURL, postID string, req types.UpdateBodyRequest) (*types.NewCommentResponse, error) {
	if err := types.ValidateIDPresent(postID, "postId"); err != nil {
		return nil, err
	}
	var res types.NewCommentResponse
	route := "/blogs/" + url.PathEscape(postID) + "/comments"
	if err := sendJSON(ctx, httpClient, http.MethodPost, apiURL(baseURL, route), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateComment replaces the body of an existing comment.
func UpdateComment(ctx context.Context, httpClient *http.Client, baseURL, commentID string, req types.UpdateBodyRequest) (*types.UpdatedResponse, error) {
	if err := types.ValidateIDPresent(commentID, "commentId"); err != nil {
		return nil, err
	}
	var res types.UpdatedResponse
	route := "/comments/" + url.PathEscape(commentID)
	if err := sendJSON(ctx, httpClient, http.MethodPut, apiURL(baseURL, route), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteComment removes a comment.
func DeleteComment(ctx context.Context, httpClient *http.Client, baseURL, commentID string) error {
	if err := types.ValidateIDPresent(commentID, "commentId"); err != nil {
		return err
	}
	return dataless(ctx, httpClient, http.MethodDelete, apiURL(baseURL, "/comments/"+url.PathEscape(commentID)))
}
