package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	taskListKey     = "choreboard:tasks:list"
	roommateListKey = "choreboard:roommates:list"

	listCacheTTL = 60 * time.Second
)

// listCache is a cache-aside helper for the unfiltered list endpoints.
// Every method is a no-op when no Redis client is attached.
type listCache struct {
	rdb *redis.Client
}

func (c *listCache) get(ctx context.Context, key string, dst any) bool {
	if c.rdb == nil {
		return false
	}
	s, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(s), dst) == nil
}

func (c *listCache) set(ctx context.Context, key string, v any) {
	if c.rdb == nil {
		return
	}
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, string(b), listCacheTTL).Err()
	}
}

func (c *listCache) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}
