package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	appcatalog "github.com/shopcore/catalog/internal/application/catalog"
)

const cleanupInterval = 30 * time.Second

// InMemorySearchCache implements catalog.SearchResultCache with process-local
// storage. Suitable for single-instance deployments and tests; entries are not
// shared across processes.
type InMemorySearchCache struct {
	entries sync.Map // map[string]*searchEntry
	ttl     time.Duration
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

type searchEntry struct {
	result    *appcatalog.SearchResult
	expiresAt time.Time
}

func (e *searchEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// NewInMemorySearchCache creates an in-memory search result cache.
// A non-positive ttl falls back to the default.
func NewInMemorySearchCache(ttl time.Duration) *InMemorySearchCache {
	if ttl <= 0 {
		ttl = defaultSearchTTL
	}
	cache := &InMemorySearchCache{
		ttl:    ttl,
		stopCh: make(chan struct{}),
	}
	go cache.cleanupExpired()
	return cache
}

// Get retrieves a cached search result. A miss returns (nil, nil).
func (c *InMemorySearchCache) Get(ctx context.Context, key string) (*appcatalog.SearchResult, error) {
	if value, ok := c.entries.Load(key); ok {
		entry := value.(*searchEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			return entry.result, nil
		}
		c.entries.Delete(key)
	}

	atomic.AddInt64(&c.misses, 1)
	return nil, nil
}

// Set stores a search result in cache
func (c *InMemorySearchCache) Set(ctx context.Context, key string, result *appcatalog.SearchResult) error {
	if result == nil {
		return nil
	}
	c.entries.Store(key, &searchEntry{
		result:    result,
		expiresAt: time.Now().Add(c.ttl),
	})
	return nil
}

// InvalidateAll removes every cached search result
func (c *InMemorySearchCache) InvalidateAll() {
	c.entries.Range(func(key, _ any) bool {
		c.entries.Delete(key)
		return true
	})
}

// Close stops the background cleanup goroutine
func (c *InMemorySearchCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// Stats returns hit and miss counters
func (c *InMemorySearchCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Count returns the number of entries currently held
func (c *InMemorySearchCache) Count() int {
	count := 0
	c.entries.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

func (c *InMemorySearchCache) cleanupExpired() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.entries.Range(func(key, value any) bool {
				if value.(*searchEntry).isExpired() {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}

// Ensure InMemorySearchCache implements SearchResultCache
var _ appcatalog.SearchResultCache = (*InMemorySearchCache)(nil)
