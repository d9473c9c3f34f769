package blogdrown

import (
	"net/http"
	"net/http/cookiejar"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	c, err := New("http://example.com", WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set: %v", c.http.Timeout)
	}

	if _, err := New("http://example.com", WithHTTPTimeout(0)); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}

func TestWithCookieJar(t *testing.T) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	c, err := New("http://example.com", WithCookieJar(jar))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Jar != jar {
		t.Fatal("custom jar not installed")
	}

	if _, err := New("http://example.com", WithCookieJar(nil)); err == nil {
		t.Fatal("expected error for nil jar")
	}
}

func TestNew_EmptyBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty baseURL")
	}
}

func TestRequestIDHeaderAdded(t *testing.T) {
	var gotID string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotID = r.Header.Get("X-Request-Id")
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})

	c, err := New("http://example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Inject base transport beneath the request-id wrapper for the test.
	c.http.Transport.(*requestIDTransport).base = rt

	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotID == "" {
		t.Fatal("X-Request-Id not set")
	}
}
