package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// tokenKey is the single fixed key the session token lives under. The value
// survives process restarts until an explicit logout clears it.
const tokenKey = "dk_auth_token"

const changeBuffer = 8

// TokenStore is the durable holder of the session bearer token. It is a dumb
// container: no expiry, no validation, one key. Every mutation is published
// on the Changes stream.
type TokenStore struct {
	client  *redis.Client
	changes chan ports.TokenChange
}

// NewTokenStore wraps the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{
		client:  client,
		changes: make(chan ports.TokenChange, changeBuffer),
	}
}

// Get returns the stored token and whether one is present.
func (s *TokenStore) Get(ctx context.Context) (string, bool, error) {
	val, err := s.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("token get: %w", err)
	}
	return val, true, nil
}

// Set stores the token, replacing any previous value.
func (s *TokenStore) Set(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, tokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("token set: %w", err)
	}
	s.publish(ports.TokenChange{Token: token, Present: true})
	return nil
}

// Clear removes the token. Clearing an already-empty store is a no-op.
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, tokenKey).Err(); err != nil {
		return fmt.Errorf("token clear: %w", err)
	}
	s.publish(ports.TokenChange{})
	return nil
}

// Changes streams mutations. Best-effort: a full buffer drops the oldest
// notification rather than blocking the writer.
func (s *TokenStore) Changes() <-chan ports.TokenChange {
	return s.changes
}

func (s *TokenStore) publish(change ports.TokenChange) {
	for {
		select {
		case s.changes <- change:
			return
		default:
			select {
			case <-s.changes:
			default:
			}
		}
	}
}
