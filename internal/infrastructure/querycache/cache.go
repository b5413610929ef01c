package querycache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the authoritative value for a query key.
type FetchFunc func(ctx context.Context) (interface{}, error)

type entry struct {
	value     interface{}
	fetchedAt time.Time
	stale     bool
}

// Cache is a read-through cache keyed by query key (resource + parameters).
// Invalidate marks a key stale; the next Read refetches. Concurrent reads of
// a stale key coalesce into a single in-flight fetch via singleflight, so N
// rapid invalidations cost at most one refetch.
type Cache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

// Read returns the cached value when present and fresh, else fetches. Errors
// are surfaced per key and nothing is cached for a failed fetch; retry policy
// belongs to the caller.
func (c *Cache) Read(ctx context.Context, key string, fetch FetchFunc) (interface{}, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && !e.stale && time.Since(e.fetchedAt) < c.ttl {
		return e.value, nil
	}

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Another caller may have refreshed the key while we waited on
		// the flight lock.
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && !e.stale && time.Since(e.fetchedAt) < c.ttl {
			return e.value, nil
		}

		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &entry{value: v, fetchedAt: time.Now()}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Invalidate marks the key stale. Idempotent: repeated invalidations of the
// same key leave the cache in the same state.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		e.stale = true
	}
	c.mu.Unlock()
}

// Drop removes the key outright, forgetting its last value.
func (c *Cache) Drop(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
