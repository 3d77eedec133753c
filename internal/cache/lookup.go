package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lookupKeyPrefix = "greenpoint:lookup:"

// LookupCache keeps string lists (region codes, city names) in redis.
type LookupCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewLookupCache(client redis.UniversalClient, ttl time.Duration) *LookupCache {
	return &LookupCache{
		client: client,
		ttl:    ttl,
	}
}

// Get reports false on a cache miss.
func (c *LookupCache) Get(ctx context.Context, key string) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, lookupKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s failed: %w", key, err)
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, false, fmt.Errorf("cached %s unmarshal failed: %w", key, err)
	}

	return values, true, nil
}

func (c *LookupCache) Set(ctx context.Context, key string, values []string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("cached %s marshal failed: %w", key, err)
	}

	if err := c.client.Set(ctx, lookupKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s failed: %w", key, err)
	}

	return nil
}
