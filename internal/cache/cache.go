package cache

import (
	"sync"
	"time"

	"interndash/internal"
)

// Cache memoizes the last fetched grid for a single source key within a
// fixed freshness window. Invalidation is by elapsed time only; a recompute
// race between concurrent renders is last-write-wins, which is harmless
// because the recomputed grid is deterministic for the same upstream data.
type Cache struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time

	key      string
	grid     internal.RawGrid
	storedAt time.Time
}

const defaultTTL = 5 * time.Minute

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the cached grid when it belongs to key and is still fresh.
func (c *Cache) Get(key string) (internal.RawGrid, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.storedAt.IsZero() || c.key != key {
		return nil, false
	}
	if c.now().Sub(c.storedAt) >= c.ttl {
		return nil, false
	}
	return c.grid, true
}

// Put replaces the single entry. A different key evicts the previous one.
func (c *Cache) Put(key string, grid internal.RawGrid) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.key = key
	c.grid = grid
	c.storedAt = c.now()
}
