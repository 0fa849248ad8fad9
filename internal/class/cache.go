package class

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"classbook/internal/logger"
	"classbook/internal/metrics"
)

const listingKeyPrefix = "classes:upcoming:"

// Cache is a Redis-backed cache of serialized upcoming-class listings, keyed
// per display timezone. With no Redis address configured every lookup is a
// miss and writes are no-ops, so callers never branch on its presence.
// Cache failures degrade to the database, never to an error.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(addr string, ttl time.Duration) *Cache {
	if addr == "" {
		return &Cache{ttl: ttl}
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func newCacheWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) GetListing(ctx context.Context, timezone string) ([]Response, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, listingKeyPrefix+timezone).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Error("class listing cache read failed", "error", err)
		}
		metrics.RecordCacheLookup(false)
		return nil, false
	}

	var classes []Response
	if err := json.Unmarshal([]byte(raw), &classes); err != nil {
		metrics.RecordCacheLookup(false)
		return nil, false
	}

	metrics.RecordCacheLookup(true)
	return classes, true
}

func (c *Cache) SetListing(ctx context.Context, timezone string, classes []Response) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(classes)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, listingKeyPrefix+timezone, raw, c.ttl).Err(); err != nil {
		logger.Error("class listing cache write failed", "error", err)
	}
}

// Flush drops every cached listing. Called after any write that changes
// availability.
func (c *Cache) Flush(ctx context.Context) {
	if c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, listingKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Error("class listing cache flush failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		logger.Error("class listing cache scan failed", "error", err)
	}
}

func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
