// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package cache

import (
	"sync"
	"time"
)

const (
	// DefaultInitialCapacity is the number of entries preallocated by NewLRUCache.
	DefaultInitialCapacity = 100

	// DefaultMaxCapacity bounds the number of live entries.
	DefaultMaxCapacity = 1000

	// DefaultTTL is the time-to-live of an entry. An entry is live while
	// now - insertedAt < TTL.
	DefaultTTL = 5 * time.Minute
)

// lruEntry represents an entry in the LRU cache with TTL support.
type lruEntry[V any] struct {
	key       string
	value     V
	prev      *lruEntry[V]
	next      *lruEntry[V]
	expiresAt time.Time
}

// LRUCache implements a thread-safe Least Recently Used cache with TTL support.
// It provides O(1) operations for Get, Add, and eviction.
//
// Key features:
//   - O(1) Get and Add operations
//   - O(1) LRU eviction when capacity is reached
//   - TTL measured from insertion; reads never extend it
//   - Lazy expiration on read plus on-demand CleanupExpired (no background goroutine)
//   - Hit, miss, eviction and expiration statistics
//
// This implementation uses a doubly-linked list for ordering and a hashmap for lookups.
type LRUCache[V any] struct {
	mu sync.Mutex

	// capacity is the maximum number of entries
	capacity int

	// ttl is the default time-to-live for entries
	ttl time.Duration

	// items maps keys to linked list nodes for O(1) lookup
	items map[string]*lruEntry[V]

	// head and tail are sentinel nodes for the doubly-linked list
	// head.next is the most recently used, tail.prev is the least recently used
	head *lruEntry[V]
	tail *lruEntry[V]

	// stats
	hits        int64
	misses      int64
	evictions   int64
	expirations int64

	now func() time.Time
}

// NewLRUCache creates a new LRU cache.
//
// Parameters:
//   - initialCapacity: entries preallocated in the index (DefaultInitialCapacity if <= 0)
//   - capacity: maximum live entries (DefaultMaxCapacity if <= 0)
//   - ttl: default time-to-live (DefaultTTL if <= 0)
func NewLRUCache[V any](initialCapacity, capacity int, ttl time.Duration) *LRUCache[V] {
	if capacity <= 0 {
		capacity = DefaultMaxCapacity
	}
	if initialCapacity <= 0 {
		initialCapacity = DefaultInitialCapacity
	}
	if initialCapacity > capacity {
		initialCapacity = capacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &LRUCache[V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*lruEntry[V], initialCapacity),
		head:     &lruEntry[V]{},
		tail:     &lruEntry[V]{},
		now:      time.Now,
	}

	// Initialize linked list sentinels
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get retrieves an entry from the cache.
// Returns the value and true if found and not expired.
// Found entries are moved to the front (most recently used).
func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	entry, exists := c.items[key]
	if !exists {
		c.misses++
		return zero, false
	}

	if expired(entry, c.now()) {
		c.removeEntry(entry)
		c.expirations++
		c.misses++
		return zero, false
	}

	c.moveToFront(entry)
	c.hits++
	return entry.value, true
}

// Add adds or replaces an entry using the default TTL.
func (c *LRUCache[V]) Add(key string, value V) {
	c.AddWithTTL(key, value, c.ttl)
}

// AddWithTTL adds or replaces an entry with a custom TTL.
// Replacing an entry restarts its TTL. If the cache is over capacity,
// least recently used entries are evicted.
func (c *LRUCache[V]) AddWithTTL(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(ttl)

	if entry, exists := c.items[key]; exists {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &lruEntry[V]{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
	}
	c.addToFront(entry)
	c.items[key] = entry

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// CleanupExpired removes all expired entries from the cache.
// Returns the number of entries removed.
func (c *LRUCache[V]) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0

	// Walk from tail (oldest) to head (newest)
	for entry := c.tail.prev; entry != c.head; {
		prev := entry.prev
		if expired(entry, now) {
			c.removeEntry(entry)
			removed++
		}
		entry = prev
	}

	c.expirations += int64(removed)
	return removed
}

// Stats returns a snapshot of the cache statistics.
func (c *LRUCache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		Expirations: c.expirations,
		Size:        len(c.items),
		Capacity:    c.capacity,
	}
}

// expired reports whether entry has lived its full TTL. An entry is live only
// while now is strictly before expiresAt.
func expired[V any](entry *lruEntry[V], now time.Time) bool {
	return !now.Before(entry.expiresAt)
}

// Internal methods (must be called with lock held)

// addToFront adds an entry to the front of the list (most recently used).
func (c *LRUCache[V]) addToFront(entry *lruEntry[V]) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

// moveToFront moves an existing entry to the front of the list.
func (c *LRUCache[V]) moveToFront(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

// removeEntry removes an entry from both the list and the map.
func (c *LRUCache[V]) removeEntry(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}

// evictOldest removes the least recently used entry.
func (c *LRUCache[V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	c.evictions++
}
