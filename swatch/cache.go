// Package swatch renders terminal color previews and keeps recently rendered ones in a
// fixed-capacity least-recently-used cache.
package swatch

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Cache is a fixed-capacity LRU map. The oldest pair is at the front; hits move to the back.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	entries  *orderedmap.OrderedMap[K, V]
}

// NewCache returns an empty cache holding at most capacity entries (at least one).
func NewCache[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		capacity: capacity,
		entries:  orderedmap.New[K, V](),
	}
}

// Get returns the cached value and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok = c.entries.Get(key)
	if ok {
		_ = c.entries.MoveToBack(key)
	}
	return
}

// Put stores a value as the most recently used entry, evicting the single oldest entry on overflow.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, present := c.entries.Set(key, value); present {
		_ = c.entries.MoveToBack(key)
		return
	}

	if c.entries.Len() > c.capacity {
		c.entries.Delete(c.entries.Oldest().Key)
	}
}

// GetOrPut returns the cached value or stores the one produced by render.
func (c *Cache[K, V]) GetOrPut(key K, render func() V) V {
	if value, ok := c.Get(key); ok {
		return value
	}

	value := render()
	c.Put(key, value)
	return value
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Keys lists cached keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
