package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blogdrown/blogdrown-go/internal/types"
)

func TestListPosts_Success(t *testing.T) {
	t.Parallel()
	items := []types.PostListItem{
		{ID: "a", Title: "First", TitleNorm: "first", PartialBody: "Hello", User: types.MinUser{ID: "u1", Username: "ada"}},
		{ID: "b", Title: "Second", TitleNorm: "second", PartialBody: "World", User: types.MinUser{ID: "u2", Username: "bob"}},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/blogs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(items)
	}))
	defer srv.Close()

	got, err := ListPosts(context.Background(), srv.Client(), srv.URL)
	if err != nil || len(got) != 2 || got[0].User.Username != "ada" {
		t.Fatalf("ListPosts unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetPost_Success(t *testing.T) {
	t.Parallel()
	detail := types.PostDetail{
		ID: "p1", Title: "First", TitleNorm: "first", Body: "Hello world",
		User: types.MinUser{ID: "u1", Username: "ada"},
		Comments: []types.CommentItem{
			{ID: "c1", PostID: "p1", Body: "nice", Author: types.MinUser{ID: "u2", Username: "bob"}},
		},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/blogs/one" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("id") != "p1" {
			t.Errorf("id query not forwarded: %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(detail)
	}))
	defer srv.Close()

	got, err := GetPost(context.Background(), srv.Client(), srv.URL, "p1")
	if err != nil || got == nil || got.Body != "Hello world" || len(got.Comments) != 1 {
		t.Fatalf("GetPost unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetPost_EmptyID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if _, err := GetPost(context.Background(), srv.Client(), srv.URL, ""); err == nil {
		t.Fatal("expected validation error for empty id")
	}
}

func TestCreatePost_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/blogs" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.NewPostResponse{ID: "p9", TitleNorm: "my-post"})
	}))
	defer srv.Close()

	got, err := CreatePost(context.Background(), srv.Client(), srv.URL, types.NewPostRequest{Title: "My Post", Body: "text"})
	if err != nil || got.ID != "p9" || got.TitleNorm != "my-post" {
		t.Fatalf("CreatePost unexpected: got=%+v err=%v", got, err)
	}
}

func TestCreatePost_ValidationError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "validation failed",
			"errors":  map[string]string{"title": "must not be empty"},
		})
	}))
	defer srv.Close()

	_, err := CreatePost(context.Background(), srv.Client(), srv.URL, types.NewPostRequest{})
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.Field("title") == "" {
		t.Fatalf("expected structured validation error, got %v", err)
	}
}

func TestUpdatePost_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/blogs/p1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.UpdatedResponse{UpdatedAt: "2024-02-02T00:00:00Z"})
	}))
	defer srv.Close()

	got, err := UpdatePost(context.Background(), srv.Client(), srv.URL, "p1", types.UpdateBodyRequest{Body: "new"})
	if err != nil || got.UpdatedAt == "" {
		t.Fatalf("UpdatePost unexpected: got=%+v err=%v", got, err)
	}
}

func TestDeletePost_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/blogs/p1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := DeletePost(context.Background(), srv.Client(), srv.URL, "p1"); err != nil {
		t.Fatalf("DeletePost error: %v", err)
	}
}

func TestBlogs_DecodeErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{bad json"))
	}))
	defer srv.Close()

	if _, err := ListPosts(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Fatal("expected decode error for ListPosts")
	}
	if _, err := GetPost(context.Background(), srv.Client(), srv.URL, "p1"); err == nil {
		t.Fatal("expected decode error for GetPost")
	}
}

func TestBlogs_TransportError(t *testing.T) {
	t.Parallel()
	hc := errClient()
	if _, err := ListPosts(context.Background(), hc, "http://example.com"); err == nil {
		t.Fatal("expected Do error for ListPosts")
	}
	if err := DeletePost(context.Background(), hc, "http://example.com", "p1"); err == nil {
		t.Fatal("expected Do error for DeletePost")
	}
}
