// Package blogdrown is the Go SDK for the BlogDrown blogging platform API.
// A Client wraps the HTTP API and feeds a normalized in-memory store of
// posts, users, comments and session state; views over the store are served
// by memoized selectors.
package blogdrown

import (
	"errors"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blogdrown/blogdrown-go/markdown"
	"github.com/blogdrown/blogdrown-go/store"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	store   *store.Store
	md      *markdown.Renderer
}

// New constructs a Client for the API at baseURL. Session authentication is
// cookie-based: the underlying http.Client carries a cookie jar and the
// backend sets the session cookie on login/signup.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second, Jar: jar},
		store:   store.New(),
		md:      markdown.NewRenderer(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransportWithRequestID()

	return c, nil
}

// Store exposes the normalized entity cache. The cache is process-global to
// the Client and outlives any single consumer of its views.
func (c *Client) Store() *store.Store { return c.store }

// RenderMarkdown converts a post or comment body to an HTML fragment,
// memoized by source text.
func (c *Client) RenderMarkdown(text string) (string, error) { return c.md.Render(text) }

// wrapTransportWithRequestID wraps the HTTP transport so every request
// carries a fresh correlation id, which the debug transport and server logs
// can tie together.
func (c *Client) wrapTransportWithRequestID() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &requestIDTransport{base: baseTransport}
}

type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	return t.base.RoundTrip(cloned)
}
