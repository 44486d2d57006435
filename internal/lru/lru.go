// Package lru provides a bounded, mutex-guarded least-recently-used cache.
package lru

import (
	"container/list"
	"sync"
)

// entry holds a cached key/value pair inside the recency list.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed-capacity LRU map. All operations take a single lock, which
// keeps Get/Put safe for concurrent use from multiple goroutines.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	recency  *list.List
}

// New creates a Cache holding at most capacity entries. A capacity below one
// is treated as one so the cache can always hold the entry just written.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		recency:  list.New(),
	}
}

// Get returns the value cached under key and refreshes its recency.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.recency.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Put stores value under key, evicting the least-recently-used entry when the
// cache is full. Writing an existing key updates its value and recency.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[K, V]).value = value
		c.recency.MoveToFront(elem)
		return
	}

	if len(c.items) >= c.capacity {
		if back := c.recency.Back(); back != nil {
			evicted := back.Value.(*entry[K, V])
			delete(c.items, evicted.key)
			c.recency.Remove(back)
		}
	}

	c.items[key] = c.recency.PushFront(&entry[K, V]{key: key, value: value})
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}
