package cache

import (
	"sync"
	"time"
)

// TTL is a concurrency-safe in-memory cache whose entries expire after a fixed
// duration. Expired entries are removed lazily on read or by Purge.
type TTL[K comparable, V any] struct {
	items sync.Map
	ttl   time.Duration
	now   func() time.Time
}

type item[V any] struct {
	value     V
	expiresAt time.Time
}

func NewTTL[K comparable, V any](ttl time.Duration) *TTL[K, V] {
	return &TTL[K, V]{ttl: ttl, now: time.Now}
}

func (c *TTL[K, V]) Set(key K, value V) {
	c.items.Store(key, &item[V]{value: value, expiresAt: c.now().Add(c.ttl)})
}

func (c *TTL[K, V]) Get(key K) (V, bool) {
	var zero V
	raw, ok := c.items.Load(key)
	if !ok {
		return zero, false
	}

	it := raw.(*item[V])
	if c.now().After(it.expiresAt) {
		// a concurrent Set may have replaced the entry since Load
		c.items.CompareAndDelete(key, raw)
		return zero, false
	}
	return it.value, true
}

func (c *TTL[K, V]) Delete(key K) {
	c.items.Delete(key)
}

// Purge drops every expired entry and returns how many were removed.
func (c *TTL[K, V]) Purge() int {
	now := c.now()
	removed := 0
	c.items.Range(func(key, raw any) bool {
		if now.After(raw.(*item[V]).expiresAt) && c.items.CompareAndDelete(key, raw) {
			removed++
		}
		return true
	})
	return removed
}
