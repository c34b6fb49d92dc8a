package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value      V
	lastAccess time.Time
}

// Cache keeps one value per chat and forgets chats that stay idle for ttl.
type Cache[V any] struct {
	mu      sync.Mutex
	items   map[int64]*entry[V]
	ttl     time.Duration
	now     func() time.Time
	onEvict func(userID int64, v V)
}

func NewCache[V any](ttl time.Duration, onEvict func(userID int64, v V)) *Cache[V] {
	return &Cache[V]{
		items:   make(map[int64]*entry[V]),
		ttl:     ttl,
		now:     time.Now,
		onEvict: onEvict,
	}
}

func (c *Cache[V]) Get(userID int64) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, exists := c.items[userID]
	if !exists {
		var zero V
		return zero, false
	}
	e.lastAccess = c.now()
	return e.value, true
}

// GetOrCreate returns the cached value or stores the one built by create.
func (c *Cache[V]) GetOrCreate(userID int64, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, exists := c.items[userID]; exists {
		e.lastAccess = c.now()
		return e.value
	}
	v := create()
	c.items[userID] = &entry[V]{value: v, lastAccess: c.now()}
	return v
}

func (c *Cache[V]) Set(userID int64, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[userID] = &entry[V]{value: v, lastAccess: c.now()}
}

func (c *Cache[V]) Delete(userID int64) {
	c.mu.Lock()
	e, exists := c.items[userID]
	delete(c.items, userID)
	c.mu.Unlock()

	if exists && c.onEvict != nil {
		c.onEvict(userID, e.value)
	}
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Cleanup evicts idle entries and returns how many were removed.
func (c *Cache[V]) Cleanup() int {
	c.mu.Lock()
	cutoff := c.now().Add(-c.ttl)
	evicted := make(map[int64]V)
	for userID, e := range c.items {
		if e.lastAccess.Before(cutoff) {
			evicted[userID] = e.value
			delete(c.items, userID)
		}
	}
	c.mu.Unlock()

	if c.onEvict != nil {
		for userID, v := range evicted {
			c.onEvict(userID, v)
		}
	}
	return len(evicted)
}

// StartCleanup runs Cleanup every interval until ctx is done.
func (c *Cache[V]) StartCleanup(ctx context.Context, interval time.Duration, report func(removed int)) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := c.Cleanup(); removed > 0 && report != nil {
					report(removed)
				}
			}
		}
	}()
}
