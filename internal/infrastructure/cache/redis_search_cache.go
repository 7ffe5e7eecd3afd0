package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appcatalog "github.com/shopcore/catalog/internal/application/catalog"
	"github.com/shopcore/catalog/internal/infrastructure/config"
)

const defaultSearchTTL = 5 * time.Minute

// RedisSearchCache implements catalog.SearchResultCache using Redis
type RedisSearchCache struct {
	client     *redis.Client
	ownsClient bool
	ttl        time.Duration
	logger     *zap.Logger
}

// RedisSearchCacheOption is a functional option for configuring the cache
type RedisSearchCacheOption func(*RedisSearchCache)

// WithSearchTTL sets the time-to-live for cached search results
func WithSearchTTL(ttl time.Duration) RedisSearchCacheOption {
	return func(c *RedisSearchCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithSearchCacheLogger sets the logger for the cache
func WithSearchCacheLogger(logger *zap.Logger) RedisSearchCacheOption {
	return func(c *RedisSearchCache) {
		c.logger = logger
	}
}

// NewRedisSearchCache creates a Redis-backed search result cache
func NewRedisSearchCache(cfg config.RedisConfig, opts ...RedisSearchCacheOption) (*RedisSearchCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisSearchCache{
		client:     client,
		ownsClient: true,
		ttl:        defaultSearchTTL,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// NewRedisSearchCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisSearchCacheWithClient(client *redis.Client, opts ...RedisSearchCacheOption) *RedisSearchCache {
	cache := &RedisSearchCache{
		client:     client,
		ownsClient: false,
		ttl:        defaultSearchTTL,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get retrieves a cached search result. A miss returns (nil, nil).
func (c *RedisSearchCache) Get(ctx context.Context, key string) (*appcatalog.SearchResult, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		c.logger.Debug("Cache miss for search result", zap.String("key", key))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get search result from cache: %w", err)
	}

	var result appcatalog.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		// Corrupted entry, drop it and treat as a miss
		_ = c.client.Del(ctx, key)
		return nil, fmt.Errorf("failed to unmarshal search result: %w", err)
	}

	c.logger.Debug("Cache hit for search result", zap.String("key", key))
	return &result, nil
}

// Set stores a search result in cache
func (c *RedisSearchCache) Set(ctx context.Context, key string, result *appcatalog.SearchResult) error {
	if result == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal search result: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set search result in cache: %w", err)
	}

	c.logger.Debug("Cached search result",
		zap.String("key", key),
		zap.Duration("ttl", c.ttl))
	return nil
}

// Close releases the Redis client if this cache created it
func (c *RedisSearchCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

// Ensure RedisSearchCache implements SearchResultCache
var _ appcatalog.SearchResultCache = (*RedisSearchCache)(nil)
