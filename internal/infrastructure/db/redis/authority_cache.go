package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const authorityTTL = 5 * time.Minute

// AuthorityCache keeps a short-lived copy of each user's role names so the
// authorization overlay does not hit the store on every admin-gated request.
// It fails safe: any Redis error behaves like a cache miss, and Set/Invalidate
// errors are swallowed because the store remains the source of truth.
type AuthorityCache struct {
	client *redis.Client
}

func NewAuthorityCache(client *redis.Client) *AuthorityCache {
	return &AuthorityCache{client: client}
}

func (c *AuthorityCache) Get(ctx context.Context, userID string) ([]string, bool) {
	data, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, false
	}
	return names, true
}

func (c *AuthorityCache) Set(ctx context.Context, userID string, names []string) {
	data, err := json.Marshal(names)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(userID), data, authorityTTL).Err()
}

func (c *AuthorityCache) Invalidate(ctx context.Context, userID string) {
	_ = c.client.Del(ctx, c.key(userID)).Err()
}

func (c *AuthorityCache) key(userID string) string {
	return "authorities:" + userID
}
