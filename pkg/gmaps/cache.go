package gmaps

import (
	"sync"
	"time"
)

// TTLCache is a generic thread-safe cache with per-entry expiration. It is
// used to memoize geocoding lookups so repeated requests for the same origin
// do not burn API quota.
type TTLCache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]ttlItem[V]
	ttl   time.Duration
}

type ttlItem[V any] struct {
	value     V
	expiresAt time.Time
}

func (it ttlItem[V]) expired(now time.Time) bool {
	return now.After(it.expiresAt)
}

// NewTTLCache creates a cache whose entries expire after ttl.
func NewTTLCache[K comparable, V any](ttl time.Duration) *TTLCache[K, V] {
	return &TTLCache[K, V]{
		items: make(map[K]ttlItem[V]),
		ttl:   ttl,
	}
}

// Get returns the cached value for key if present and not expired.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || item.expired(time.Now()) {
		var zero V
		return zero, false
	}
	return item.value, true
}

// Set stores value under key with the configured TTL.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = ttlItem[V]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Delete removes key from the cache.
func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Size returns the number of entries, including any not yet swept.
func (c *TTLCache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Cleanup removes all expired entries.
func (c *TTLCache[K, V]) Cleanup() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, item := range c.items {
		if item.expired(now) {
			delete(c.items, key)
		}
	}
}
