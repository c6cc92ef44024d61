package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
)

const treeKey = "catalog:tree"
const treeTTL = 5 * time.Minute

// TreeCache holds the navigation tree as a JSON blob with a short TTL, so
// storefront page loads do not hit the upstream catalog on every request.
type TreeCache struct {
	client *redis.Client
}

// NewTreeCache creates a TreeCache wrapping the given Redis client.
func NewTreeCache(client *redis.Client) *TreeCache {
	return &TreeCache{client: client}
}

// Get returns the cached menu, reporting a miss for both absent and
// undecodable entries.
func (c *TreeCache) Get(ctx context.Context) (*domain.Menu, bool, error) {
	raw, err := c.client.Get(ctx, treeKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("tree cache get: %w", err)
	}

	var menu domain.Menu
	if err := json.Unmarshal(raw, &menu); err != nil {
		// Stale or corrupt entry; treat as a miss so it gets rewritten.
		return nil, false, nil
	}
	return &menu, true, nil
}

// Set stores the menu (expires after treeTTL).
func (c *TreeCache) Set(ctx context.Context, menu *domain.Menu) error {
	raw, err := json.Marshal(menu)
	if err != nil {
		return fmt.Errorf("tree cache encode: %w", err)
	}
	if err := c.client.Set(ctx, treeKey, raw, treeTTL).Err(); err != nil {
		return fmt.Errorf("tree cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached tree.
func (c *TreeCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, treeKey).Err()
}
