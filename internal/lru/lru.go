// Package lru provides a fixed-capacity least-recently-used cache.
package lru

import (
	"github.com/golang/groupcache/lru"
)

// DefaultCapacity is the capacity used when New is given a non-positive size.
const DefaultCapacity = 1024

// Stats counts cache traffic since creation or the last Clear.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
}

// Cache maps keys to values and evicts the least recently used entry once
// the capacity is exceeded. It is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	c     *lru.Cache
	cap   int
	stats Stats
}

// New returns an empty cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[K, V]{c: lru.New(capacity), cap: capacity}
	c.c.OnEvicted = func(lru.Key, interface{}) {
		c.stats.Evictions++
	}
	return c
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.c.Get(key)
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	return v.(V), true
}

// Add stores value under key, evicting the oldest entry if needed.
func (c *Cache[K, V]) Add(key K, value V) {
	c.c.Add(key, value)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.c.Len()
}

// Cap returns the maximum number of entries.
func (c *Cache[K, V]) Cap() int {
	return c.cap
}

// Clear drops every entry and resets the statistics.
func (c *Cache[K, V]) Clear() {
	c.c.Clear()
	c.stats = Stats{}
}

// Stats returns the traffic counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}
