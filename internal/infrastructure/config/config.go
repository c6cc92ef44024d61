package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
}

type UpstreamConfig struct {
	// BaseURL is the remote catalog/identity API base, e.g.
	// https://api.example.com/api. Asset URLs are resolved against the same
	// host with the trailing /api stripped.
	BaseURL string        `env:"API_BASE_URL, default=https://localhost:7257/api"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT, default=15s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// ConnectTimeout bounds the startup ping against the server.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT, default=5s"`
}

// SessionConfig carries the auth policy switches. All three default to the
// permissive behavior observed in production; the strict variants are
// implemented but off pending a product decision.
type SessionConfig struct {
	// StrictExpiryCheck makes the route guard validate token expiry instead
	// of a bare presence check.
	StrictExpiryCheck bool `env:"STRICT_EXPIRY_CHECK, default=false"`
	// RedirectOnAuthError redirects the client to /error/unauthorized when
	// an upstream call fails with 401/403.
	RedirectOnAuthError bool `env:"REDIRECT_ON_AUTH_ERROR, default=false"`
	// RequireToken turns a 2xx login/register response without an
	// extractable token into a hard failure.
	RequireToken bool `env:"REQUIRE_TOKEN_ON_LOGIN, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
