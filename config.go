package blogdrown

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven client settings under the BLOGDROWN_
// prefix.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" required:"true"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
}

// NewFromEnv constructs a Client from BLOGDROWN_* environment variables.
// Additional options are applied after the env-derived ones and win on
// conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := envconfig.Process("blogdrown", &cfg); err != nil {
		return nil, err
	}
	envOpts := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.Debug {
		envOpts = append(envOpts, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, append(envOpts, opts...)...)
}
