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

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	want := types.AuthUser{ID: "u1", Username: "ada", Email: "ada@example.com", CreatedAt: "2024-01-01T00:00:00Z"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req types.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "ada@example.com" {
			t.Errorf("email not forwarded: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "ada@example.com", Password: "pw"})
	if err != nil || got == nil || got.ID != want.ID || got.Username != want.Username {
		t.Fatalf("Login unexpected: got=%+v err=%v", got, err)
	}
}

func TestLogin_StructuredError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "invalid credentials",
			"errors":  map[string]string{"password": "does not match"},
		})
	}))
	defer srv.Close()

	_, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "e", Password: "p"})
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "invalid credentials" {
		t.Fatalf("unexpected APIError %+v", apiErr)
	}
	if apiErr.Field("password") != "does not match" {
		t.Fatalf("field message lost: %+v", apiErr.Errors)
	}
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/signup" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.AuthUser{ID: "u2", Username: "bob"})
	}))
	defer srv.Close()

	got, err := Signup(context.Background(), srv.Client(), srv.URL, types.SignupRequest{Email: "b@x", Username: "bob", Password: "pw"})
	if err != nil || got.ID != "u2" {
		t.Fatalf("Signup unexpected: got=%+v err=%v", got, err)
	}
}

func TestSession_NullBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	got, err := Session(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("Session error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil user for null body, got %+v", got)
	}
}

func TestSession_Authenticated(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.AuthUser{ID: "u1", Username: "ada"})
	}))
	defer srv.Close()

	got, err := Session(context.Background(), srv.Client(), srv.URL)
	if err != nil || got == nil || got.Username != "ada" {
		t.Fatalf("Session unexpected: got=%+v err=%v", got, err)
	}
}

func TestLogout_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/auth/logout" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := Logout(context.Background(), srv.Client(), srv.URL); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
}

func TestAuth_TransportError(t *testing.T) {
	t.Parallel()
	hc := errClient()
	if _, err := Login(context.Background(), hc, "http://example.com", types.LoginRequest{}); err == nil {
		t.Fatal("expected Do error for Login")
	}
	if _, err := Session(context.Background(), hc, "http://example.com"); err == nil {
		t.Fatal("expected Do error for Session")
	}
	if err := Logout(context.Background(), hc, "http://example.com"); err == nil {
		t.Fatal("expected Do error for Logout")
	}
}

func TestLogin_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dummy := httptest.NewServer(http.NotFoundHandler())
	defer dummy.Close()
	if _, err := Login(ctx, dummy.Client(), dummy.URL, types.LoginRequest{}); err == nil {
		t.Fatal("expected context canceled for Login")
	}
}
