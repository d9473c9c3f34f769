package blogdrown

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the request-id transport wrapper is installed,
// so transport-related options (like debug logging) sit underneath it.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include the
// session cookie and full payloads.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithCookieJar replaces the default in-memory cookie jar. Callers that
// persist the session across process restarts (the CLI does) load and save
// cookies through their own jar.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) error {
		if jar == nil {
			return fmt.Errorf("cookie jar must not be nil")
		}
		c.http.Jar = jar
		return nil
	}
}
