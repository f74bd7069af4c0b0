package cache

import "sync"

// Key is an ordered argument list identifying one logical invocation.
type Key []any

// EqualFunc compares two key elements for equality.
type EqualFunc func(a, b any) bool

// MatchKeyFunc compares a stored key against a candidate key as a whole.
// When configured, it replaces per-element comparison entirely, including
// the length check.
type MatchKeyFunc func(stored, candidate Key) bool

// CallbackFunc observes a cache lifecycle event. The cache is passed
// mutable; callbacks must not retain it beyond the call.
type CallbackFunc func(c *Cache, o Options, memoized any)

// Options configures key matching, capacity, and lifecycle callbacks.
//
// Contract:
//   - Immutability: the core never mutates an Options value it is given.
//   - Defaults: the zero value means same-value-zero element equality,
//     no whole-key override, unbounded capacity, no callbacks.
type Options struct {
	// IsEqual is the element equality predicate. Nil means SameValueZero.
	IsEqual EqualFunc

	// IsMatchingKey, when non-nil, decides whole-key matches on its own.
	// IsEqual is bypassed entirely in this mode.
	IsMatchingKey MatchKeyFunc

	// MaxSize bounds the number of entries. A value <= 0 means unbounded:
	// no entry is ever evicted, so an insertion always survives.
	MaxSize int

	// OnCacheHit fires when an existing entry is reused, including when a
	// pending asynchronous entry settles successfully while still cached.
	OnCacheHit CallbackFunc

	// OnCacheChange fires after any mutation of the cache contents.
	OnCacheChange CallbackFunc

	// Locker, when non-nil, is acquired by the settlement coordinator
	// around its settlement-time lookup and mutation. The owner that
	// serializes ordinary cache access must supply the same lock here.
	Locker sync.Locker
}

// equal returns the effective element equality predicate.
func (o Options) equal() EqualFunc {
	if o.IsEqual != nil {
		return o.IsEqual
	}
	return SameValueZero
}

// Cache holds memoized entries in most-recently-used-first order.
//
// Keys and Values are index-aligned at all times: Keys[i] identifies the
// invocation whose result is Values[i]. The cache is exclusively owned by
// the wrapper it serves; it performs no internal locking.
type Cache struct {
	Keys   []Key
	Values []any
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{}
}

// Size returns the current number of entries.
func (c *Cache) Size() int {
	return len(c.Keys)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.Keys = nil
	c.Values = nil
}

// Snapshot returns copies of the key and value sequences in their current
// order. Mutating the copies does not affect the cache.
func (c *Cache) Snapshot() ([]Key, []any) {
	keys := make([]Key, len(c.Keys))
	copy(keys, c.Keys)
	values := make([]any, len(c.Values))
	copy(values, c.Values)
	return keys, values
}

// removeAt drops the entry at index i from both sequences, keeping them
// aligned and releasing the trailing slots.
func (c *Cache) removeAt(i int) {
	copy(c.Keys[i:], c.Keys[i+1:])
	c.Keys[len(c.Keys)-1] = nil
	c.Keys = c.Keys[:len(c.Keys)-1]

	copy(c.Values[i:], c.Values[i+1:])
	c.Values[len(c.Values)-1] = nil
	c.Values = c.Values[:len(c.Values)-1]
}
