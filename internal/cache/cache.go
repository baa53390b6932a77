package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
)

// Cache provides caching functionality using Redis
type Cache struct {
	client *redis.Client
}

// NewCache creates a new cache instance
func NewCache(host string, port int, password string, db int) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	return c.client.Close()
}

func manifestKey(name string) string { return fmt.Sprintf("manifest:doc:%s", name) }
func summaryKey(name string) string { return fmt.Sprintf("manifest:summary:%s", name) }
func revisionKey(name string) string { return fmt.Sprintf("manifest:revision:%s", name) }
func lockKey(resource string) string { return fmt.Sprintf("lock:%s", resource) }
func rateLimitKey(key string) string { return fmt.Sprintf("ratelimit:%s", key) }

// Manifest Cache Operations

// SetManifest caches the encoded document of the latest revision together
// with its revision number.
func (c *Cache) SetManifest(ctx context.Context, name string, revision int64, data []byte, ttl time.Duration) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, manifestKey(name), data, ttl)
		pipe.Set(ctx, revisionKey(name), revision, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to cache manifest: %w", err)
	}
	return nil
}

// GetManifest retrieves a cached document. A miss returns nil, nil.
func (c *Cache) GetManifest(ctx context.Context, name string) ([]byte, error) {
	data, err := c.client.Get(ctx, manifestKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get manifest from cache: %w", err)
	}
	return data, nil
}

// GetRevision returns the cached revision number, or 0 on a miss
func (c *Cache) GetRevision(ctx context.Context, name string) (int64, error) {
	rev, err := c.client.Get(ctx, revisionKey(name)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get revision from cache: %w", err)
	}
	return rev, nil
}

// SetSummary caches a manifest summary
func (c *Cache) SetSummary(ctx context.Context, name string, summary *models.ManifestSummary, ttl time.Duration) error {
	return c.SetWithJSON(ctx, summaryKey(name), summary, ttl)
}

// GetSummary retrieves a cached summary. A miss returns nil, nil.
func (c *Cache) GetSummary(ctx context.Context, name string) (*models.ManifestSummary, error) {
	var summary models.ManifestSummary
	found, err := c.GetWithJSON(ctx, summaryKey(name), &summary)
	if err != nil || !found {
		return nil, err
	}
	return &summary, nil
}

// InvalidateManifest removes every cached entry for a manifest
func (c *Cache) InvalidateManifest(ctx context.Context, name string) error {
	return c.client.Del(ctx, manifestKey(name), summaryKey(name), revisionKey(name)).Err()
}

// Rate Limiting Operations

// CheckRateLimit checks if a rate limit has been exceeded
func (c *Cache) CheckRateLimit(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	k := rateLimitKey(key)

	// Increment counter
	count, err := c.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit: %w", err)
	}

	// Set expiry on first request
	if count == 1 {
		if err := c.client.Expire(ctx, k, window).Err(); err != nil {
			return false, fmt.Errorf("failed to set expiry: %w", err)
		}
	}

	// Check if limit exceeded
	return count <= limit, nil
}

// Locking Operations for Distributed Systems

// AcquireLock attempts to acquire a distributed lock
func (c *Cache) AcquireLock(ctx context.Context, resource string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, lockKey(resource), "locked", ttl).Result()
}

// ReleaseLock releases a distributed lock
func (c *Cache) ReleaseLock(ctx context.Context, resource string) error {
	return c.client.Del(ctx, lockKey(resource)).Err()
}

// SetWithJSON sets a value with JSON marshaling
func (c *Cache) SetWithJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// GetWithJSON gets a value with JSON unmarshaling and reports whether the key was present
func (c *Cache) GetWithJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil // Cache miss
		}
		return false, fmt.Errorf("failed to get value from cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return true, nil
}

// Ping is the health check
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
