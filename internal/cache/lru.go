// Package cache provides a fixed-capacity cache with strict
// least-recently-used eviction. All operations run in O(1).
//
// Recency order is kept in a doubly linked list threaded through an
// arena: entries live in a slice and link to each other by index, with
// slots 0 and 1 reserved for the head and tail sentinels. The sentinels
// make unlink and push-front total operations with no nil checks, and
// index links keep entry ownership with the arena rather than spread
// across aliased nodes.
package cache

import "fmt"

const (
	head = 0 // sentinel before the most-recently-used entry
	tail = 1 // sentinel after the least-recently-used entry
)

type entry[K comparable, V any] struct {
	key  K
	val  V
	prev int
	next int
}

// LRU is a bounded key-value cache. It is not safe for concurrent use
// on its own; callers serialize access.
type LRU[K comparable, V any] struct {
	capacity int
	arena    []entry[K, V]
	index    map[K]int
	free     []int
}

// New creates an LRU cache holding at most capacity entries.
// Capacity must be at least 1.
func New[K comparable, V any](capacity int) (*LRU[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("cache: capacity must be positive, got %d", capacity)
	}

	arena := make([]entry[K, V], 2, capacity+2)
	arena[head].next = tail
	arena[tail].prev = head

	return &LRU[K, V]{
		capacity: capacity,
		arena:    arena,
		index:    make(map[K]int, capacity),
	}, nil
}

// Get returns the value stored under key and marks the entry
// most-recently-used. A miss has no side effect.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.unlink(i)
	c.pushFront(i)

	return c.arena[i].val, true
}

// Put stores value under key as the most-recently-used entry, replacing
// any existing value. When the insertion exceeds capacity, the
// least-recently-used entry is evicted.
func (c *LRU[K, V]) Put(key K, value V) {
	if i, ok := c.index[key]; ok {
		c.arena[i].val = value
		c.unlink(i)
		c.pushFront(i)
		return
	}

	i := c.alloc()
	c.arena[i].key = key
	c.arena[i].val = value
	c.index[key] = i
	c.pushFront(i)

	if len(c.index) > c.capacity {
		c.evict()
	}
}

// Len reports the number of entries currently cached.
func (c *LRU[K, V]) Len() int {
	return len(c.index)
}

func (c *LRU[K, V]) unlink(i int) {
	p, n := c.arena[i].prev, c.arena[i].next
	c.arena[p].next = n
	c.arena[n].prev = p
}

func (c *LRU[K, V]) pushFront(i int) {
	n := c.arena[head].next
	c.arena[i].prev = head
	c.arena[i].next = n
	c.arena[n].prev = i
	c.arena[head].next = i
}

func (c *LRU[K, V]) alloc() int {
	if n := len(c.free); n > 0 {
		i := c.free[n-1]
		c.free = c.free[:n-1]
		return i
	}

	c.arena = append(c.arena, entry[K, V]{})
	return len(c.arena) - 1
}

func (c *LRU[K, V]) evict() {
	i := c.arena[tail].prev

	c.unlink(i)
	delete(c.index, c.arena[i].key)

	var zero entry[K, V]
	c.arena[i] = zero
	c.free = append(c.free, i)
}
