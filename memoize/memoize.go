package memoize

import (
	"sync"

	"github.com/amit08255/micro-memoize/cache"
)

// Fn is a memoizable function. Its full argument list is the cache key.
// A non-nil error is never cached; the call is retried next time.
type Fn func(args ...any) (any, error)

// Memoized is a function wrapped with the cache core.
//
// Contract:
//   - Concurrency: Call and the accessors are safe for concurrent use; an
//     internal mutex serializes cache access, including settlement-time
//     mutation by the async coordinator.
//   - Callbacks: lifecycle callbacks run while the mutex is held and must
//     not call back into the same Memoized.
type Memoized struct {
	mu sync.Mutex

	fn      Fn
	c       *cache.Cache
	options Options
	core    cache.Options

	getKeyIndex      cache.KeyIndexFunc
	updateAsyncCache func(c *cache.Cache, memoized any)
	stats            *profileStats
}

// New wraps fn with memoization under the given options.
func New(fn Fn, options Options) (*Memoized, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}

	m := &Memoized{
		fn:      fn,
		c:       cache.New(),
		options: options,
	}
	m.core = options.core(&m.mu)
	m.getKeyIndex = cache.NewKeyIndex(m.core)
	if options.Async {
		m.updateAsyncCache = cache.NewAsyncUpdater(m.core)
	}
	if options.CollectStats {
		m.stats = registerProfile(options.Profile)
	}
	return m, nil
}

// Must wraps fn and panics on a construction error. It simplifies
// package-level memoized declarations.
func Must(fn Fn, options Options) *Memoized {
	m, err := New(fn, options)
	if err != nil {
		panic(err)
	}
	return m
}

// Call invokes the memoized function with args.
//
// A matching cached entry is promoted to most recently used and returned
// without invoking the function. Otherwise the function runs, its result
// is inserted (evicting the oldest entry past MaxSize), and for Async
// functions the settlement coordinator is attached to the pending
// Future. Errors from the function propagate uncached.
func (m *Memoized) Call(args ...any) (any, error) {
	key := cache.Key(args)
	if m.options.TransformKey != nil {
		key = m.options.TransformKey(key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stats != nil {
		m.stats.calls.Add(1)
	}

	index := m.getKeyIndex(m.c.Keys, key)
	if index != -1 {
		if m.stats != nil {
			m.stats.hits.Add(1)
		}
		if m.core.OnCacheHit != nil {
			m.core.OnCacheHit(m.c, m.core, m)
		}
		if index != 0 {
			cache.OrderByLRU(m.c, m.c.Keys[index], m.c.Values[index], index, m.options.MaxSize)
			if m.core.OnCacheChange != nil {
				m.core.OnCacheChange(m.c, m.core, m)
			}
		}
		return m.c.Values[0], nil
	}

	value, err := m.fn(args...)
	if err != nil {
		return value, err
	}
	if m.options.Async {
		if _, ok := value.(*cache.Future); !ok {
			return nil, ErrNotFuture
		}
	}

	cache.OrderByLRU(m.c, key, value, m.c.Size(), m.options.MaxSize)
	if m.updateAsyncCache != nil {
		m.updateAsyncCache(m.c, m)
	}
	if m.options.OnCacheAdd != nil {
		m.options.OnCacheAdd(m.c, m.core, m)
	}
	if m.core.OnCacheChange != nil {
		m.core.OnCacheChange(m.c, m.core, m)
	}
	return m.c.Values[0], nil
}

// Cache exposes the underlying cache. Callers that mutate it must hold
// no expectations about concurrent Call invocations.
func (m *Memoized) Cache() *cache.Cache {
	return m.c
}

// Options returns the options the wrapper was built with.
func (m *Memoized) Options() Options {
	return m.options
}

// Clear empties the cache.
func (m *Memoized) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.c.Clear()
}

// Size returns the current number of cached entries.
func (m *Memoized) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.c.Size()
}

// Stats returns the collected statistics for this function. The zero
// Stats is returned when CollectStats was not enabled.
func (m *Memoized) Stats() Stats {
	if m.stats == nil {
		return Stats{}
	}
	return m.stats.snapshot()
}
