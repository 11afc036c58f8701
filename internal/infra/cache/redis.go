package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultSearchTTL matches the product rule: a search result is replayable
// for 24 hours, then it must be re-fetched.
const DefaultSearchTTL = 24 * time.Hour

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// SearchCache keeps the last search result per user and search kind
// ("contacts" | "companies"). Redis expiry backs up the entry TTL, but the
// entry's own clock is authoritative so a replay never outlives the vendor's
// requestId window.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSearchCache(rdb *redis.Client, ttl time.Duration) *SearchCache {
	if ttl == 0 {
		ttl = DefaultSearchTTL
	}
	return &SearchCache{rdb: rdb, ttl: ttl}
}

func (c *SearchCache) key(userID int64, kind string) string {
	return fmt.Sprintf("search:last:%d:%s", userID, kind)
}

// Put stores value as the last result for user+kind.
func (c *SearchCache) Put(ctx context.Context, userID int64, kind string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}

	entry := Entry{
		Value:     raw,
		WrittenAt: time.Now(),
		TTL:       c.ttl,
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	return c.rdb.Set(ctx, c.key(userID, kind), payload, c.ttl).Err()
}

// Get loads the last result into out. An expired or missing entry reads as
// absent (false, nil); expired entries are evicted on the way out.
func (c *SearchCache) Get(ctx context.Context, userID int64, kind string, out any) (bool, error) {
	payload, err := c.rdb.Get(ctx, c.key(userID, kind)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var entry Entry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return false, fmt.Errorf("unmarshal cache entry: %w", err)
	}

	if IsExpired(entry, time.Now()) {
		c.rdb.Del(ctx, c.key(userID, kind))
		return false, nil
	}

	if err := json.Unmarshal(entry.Value, out); err != nil {
		return false, fmt.Errorf("unmarshal cache value: %w", err)
	}
	return true, nil
}
