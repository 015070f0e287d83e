package cache

import (
	"context"
	"sync"
	"time"

	"github.com/archiveinsight/backend/internal/domain"
)

const defaultSweepInterval = 10 * time.Minute

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// MemoryCache is a thread-safe in-process report cache with TTL support.
// Values are copied on the way in and out so callers cannot mutate stored reports.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryCache creates an in-memory cache that sweeps expired entries periodically
func NewMemoryCache() *MemoryCache {
	return newMemoryCache(defaultSweepInterval)
}

func newMemoryCache(sweepInterval time.Duration) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go c.sweep(sweepInterval)
	return c
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || e.expired(c.now()) {
		return nil, domain.ErrCacheMiss
	}
	return cloneBytes(e.value), nil
}

// Set stores a value with the given TTL. A non-positive TTL stores nothing.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	c.entries[key] = entry{value: cloneBytes(value), expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Exists checks if a key exists in the cache and is not expired
func (c *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	return ok && !e.expired(c.now()), nil
}

// Size returns the number of stored entries, expired ones included until the next sweep
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Close stops the background sweeper
func (c *MemoryCache) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return nil
}

func (c *MemoryCache) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *MemoryCache) removeExpired() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
		}
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
