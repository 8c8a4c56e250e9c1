// Package family aggregates resolved word records into family
// statistics and runs the batch label population pass.
package family

import (
	"sync"
	"time"
)

// Cache is a single-value time-bounded cache with get-or-compute
// semantics. A rebuild holds the lock until it completes, so readers
// never observe a partial value; writes elsewhere do not invalidate it —
// staleness up to one TTL window is accepted behavior.
type Cache[T any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	value    T
	loadedAt time.Time
	loaded   bool

	now func() time.Time // test hook
}

// NewCache returns a cache whose value expires ttl after each rebuild.
func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{ttl: ttl, now: time.Now}
}

// GetOrCompute returns the cached value, rebuilding it with compute when
// absent or expired. A failed compute leaves the cache empty.
func (c *Cache[T]) GetOrCompute(compute func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded && c.now().Sub(c.loadedAt) < c.ttl {
		return c.value, nil
	}

	value, err := compute()
	if err != nil {
		var zero T
		c.loaded = false
		return zero, err
	}
	c.value = value
	c.loadedAt = c.now()
	c.loaded = true
	return value, nil
}

// Invalidate drops the cached value so the next read recomputes.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
}
