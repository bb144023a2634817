// Package lru provides size-bounded caches whose entries expire after a
// fixed time to live.
package lru

import (
	"time"

	"github.com/hashicorp/golang-lru/v2"
)

// DefaultSize bounds the number of entries held by a cache.
const DefaultSize = 1024

// entry is a cached value with the instant it was stored.
type entry[V any] struct {
	value     V
	timestamp time.Time
}

// Cache is a least-recently-used cache with per-entry expiry. An entry is
// valid while now - timestamp < ttl. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	cache *lru.Cache[K, entry[V]]
	ttl   time.Duration
	now   func() time.Time
}

// Option configures a Cache.
type Option func(*config)

type config struct {
	size int
	now  func() time.Time
}

// WithSize sets the maximum number of entries.
// Defaults to DefaultSize if not specified.
func WithSize(n int) Option {
	return func(c *config) {
		c.size = n
	}
}

// WithClock sets the clock used to timestamp and expire entries.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// New creates a Cache whose entries live for ttl.
func New[K comparable, V any](ttl time.Duration, opts ...Option) (*Cache[K, V], error) {
	cfg := config{size: DefaultSize, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := lru.New[K, entry[V]](cfg.size)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{cache: c, ttl: ttl, now: cfg.now}, nil
}

// MustNew is like New but panics on an invalid size.
func MustNew[K comparable, V any](ttl time.Duration, opts ...Option) *Cache[K, V] {
	c, err := New[K, V](ttl, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the value for key if present and not expired.
// Expired entries are removed.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.cache.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().Sub(e.timestamp) >= c.ttl {
		c.cache.Remove(key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Add stores value under key, stamped with the current time.
func (c *Cache[K, V]) Add(key K, value V) {
	c.cache.Add(key, entry[V]{value: value, timestamp: c.now()})
}

// Remove drops key from the cache.
func (c *Cache[K, V]) Remove(key K) {
	c.cache.Remove(key)
}

// Len returns the number of stored entries, including expired ones not
// yet evicted.
func (c *Cache[K, V]) Len() int {
	return c.cache.Len()
}

// Purge removes every entry.
func (c *Cache[K, V]) Purge() {
	c.cache.Purge()
}

// TTL returns the lifetime of an entry.
func (c *Cache[K, V]) TTL() time.Duration {
	return c.ttl
}
