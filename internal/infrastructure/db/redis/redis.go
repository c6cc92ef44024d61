package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config captures the settings for the gateway's Redis connection, shared by
// the token store and the catalog-tree cache.
type Config struct {
	Addr string
	DB   int
	// ConnectTimeout bounds the startup ping. Zero means no extra bound
	// beyond the caller's context.
	ConnectTimeout time.Duration
}

// Connect opens the shared client and validates connectivity with a ping, so
// an unreachable server fails the gateway at startup instead of on the first
// login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connect %s: %w", cfg.Addr, err)
	}

	return client, nil
}
