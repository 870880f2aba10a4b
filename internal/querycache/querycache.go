// Package querycache is the console's stale-while-revalidate read layer. It
// holds backend responses keyed by entity kind and id for a short TTL, and is
// explicitly invalidated by callers after a successful write. It never
// persists anything; the backend stays the system of record.
package querycache

import (
	"context"
	"strings"
	"sync"
	"time"
)

const purgeInterval = 1 * time.Minute

type entry struct {
	value     any
	fetchedAt time.Time
}

// Cache is a TTL map keyed by strings from Key. Safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

// New returns a cache whose entries go stale after ttl. A background
// goroutine purges expired entries until Close is called.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		items: make(map[string]entry),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	go c.purgeLoop()
	return c
}

// Key builds a cache key from an entity kind and optional ids, e.g.
// Key("persona", "p1") -> "persona/p1".
func Key(kind string, ids ...string) string {
	if len(ids) == 0 {
		return kind
	}
	return kind + "/" + strings.Join(ids, "/")
}

// Get returns a fresh entry, or ok=false when missing or stale.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || time.Since(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.value, true
}

// Set stores a value under key with a fresh timestamp.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.items[key] = entry{value: value, fetchedAt: time.Now()}
	c.mu.Unlock()
}

// Invalidate drops the given keys.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.items, k)
	}
	c.mu.Unlock()
}

// InvalidateKind drops every key belonging to an entity kind, including the
// bare list key.
func (c *Cache) InvalidateKind(kind string) {
	prefix := kind + "/"
	c.mu.Lock()
	for k := range c.items {
		if k == kind || strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	c.mu.Unlock()
}

// Close stops the purge goroutine.
func (c *Cache) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache) purgeLoop() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for k, e := range c.items {
				if now.Sub(e.fetchedAt) >= c.ttl {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		}
	}
}

// Through reads key through the cache, calling fetch on a miss and storing
// the result. Concurrent misses for the same key may fetch twice; last write
// wins, which matches the browser data-fetching model this mirrors.
func Through[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}
