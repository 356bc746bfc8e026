// seehuhn.de/go/reportpaint - paintables and hit regions for report pages
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package objcache provides a small, explicitly passed cache for
// deduplicating immutable values.
//
// The cache is bounded by [MaxEntries].  When the bound is exceeded, all
// entries are discarded at once.  Caches are not safe for concurrent use;
// each report generation pass is expected to use its own cache.
package objcache

// MaxEntries is the maximum number of entries held by a cache.
const MaxEntries = 3000

// Cache maps keys to values.
type Cache[K comparable, V any] struct {
	capacity int
	entries  map[K]V
}

// New creates a new cache holding up to [MaxEntries] entries.
func New[K comparable, V any]() *Cache[K, V] {
	return NewWithCapacity[K, V](MaxEntries)
}

// NewWithCapacity creates a new cache with the given capacity.
// A capacity of zero or less disables caching.
func NewWithCapacity[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		capacity: capacity,
	}
}

// Put adds a value to the cache.  If this brings the number of entries
// above the capacity, the cache is cleared before the new entry is stored.
func (c *Cache[K, V]) Put(key K, val V) {
	if c == nil || c.capacity <= 0 {
		return
	}
	if c.entries == nil {
		c.entries = make(map[K]V)
	}
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.capacity {
		clear(c.entries)
	}
	c.entries[key] = val
}

// Get returns the value stored for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	val, ok := c.entries[key]
	return val, ok
}

// Has returns true if the cache contains the given key.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.Get(key)
	return ok
}

// GetOrCompute returns the cached value for key.  If no value is cached,
// compute is called and its result is stored.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) V {
	if val, ok := c.Get(key); ok {
		return val
	}
	val := compute()
	c.Put(key, val)
	return val
}

// Len returns the number of entries currently in the cache.
func (c *Cache[K, V]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	if c == nil {
		return
	}
	clear(c.entries)
}

// Intern returns a canonical copy of v: the first value equal to v which
// was passed to Intern since the cache was last cleared.
func Intern[T comparable](c *Cache[T, T], v T) T {
	return c.GetOrCompute(v, func() T { return v })
}
