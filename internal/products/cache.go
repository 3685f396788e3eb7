package products

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores resolved listings keyed by the raw product name as
// extracted (case-sensitive). Entries older than the TTL are treated as
// absent and overwritten by the next Put. There is no size limit.
type Cache interface {
	Get(ctx context.Context, name string) (Listing, bool, error)
	Put(ctx context.Context, name string, listing Listing) error
}

func listingKey(name string) string {
	return "listing:" + name
}

// RedisCache backs the listing cache with Redis; expiry rides on the
// native key TTL.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, name string) (Listing, bool, error) {
	val, err := c.client.Get(ctx, listingKey(name)).Result()
	if err == redis.Nil {
		return Listing{}, false, nil
	}
	if err != nil {
		return Listing{}, false, err
	}

	var listing Listing
	if err := json.Unmarshal([]byte(val), &listing); err != nil {
		// Treat unreadable entries as absent; the next Put overwrites.
		return Listing{}, false, nil
	}
	return listing, true, nil
}

func (c *RedisCache) Put(ctx context.Context, name string, listing Listing) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listingKey(name), data, c.ttl).Err()
}

// MemoryCache is a process-wide map cache for tests and single-node
// deployments. It never evicts; expiry is checked on read.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	listing   Listing
	fetchedAt time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, name string) (Listing, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[name]
	if !ok || c.now().Sub(entry.fetchedAt) >= c.ttl {
		return Listing{}, false, nil
	}
	return entry.listing, true, nil
}

func (c *MemoryCache) Put(_ context.Context, name string, listing Listing) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = cacheEntry{listing: listing, fetchedAt: c.now()}
	return nil
}
