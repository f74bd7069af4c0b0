package memoize

import (
	"sync"

	"github.com/amit08255/micro-memoize/cache"
)

// Options configures a memoized function.
//
// The zero value means: same-value-zero element equality, no whole-key
// override, unbounded cache, synchronous results, no callbacks, no key
// transform, no statistics.
type Options struct {
	// IsEqual is the element equality predicate for key matching.
	IsEqual cache.EqualFunc

	// IsMatchingKey, when set, replaces per-element key comparison.
	IsMatchingKey cache.MatchKeyFunc

	// Async marks the wrapped function as returning a *cache.Future.
	// Pending entries are cached immediately and settled later: a failed
	// settlement removes the entry, a successful one confirms it.
	Async bool

	// MaxSize bounds the cache. <= 0 means unbounded.
	MaxSize int

	// OnCacheAdd fires after a new entry is inserted.
	OnCacheAdd cache.CallbackFunc

	// OnCacheChange fires after any mutation of the cache contents.
	OnCacheChange cache.CallbackFunc

	// OnCacheHit fires when an existing entry is reused.
	OnCacheHit cache.CallbackFunc

	// TransformKey rewrites the argument list before it is used as a
	// cache key, e.g. SerializeKey to collapse it to a hash.
	TransformKey func(cache.Key) cache.Key

	// CollectStats enables call/hit counting under Profile.
	CollectStats bool

	// Profile names this function in the statistics registry. Empty
	// means an autogenerated anonymous profile name.
	Profile string
}

// Merge combines two option sets into a new one, never mutating either
// input. Fields set in override win; zero fields leave base untouched.
// Boolean fields combine with or, since false is indistinguishable from
// unset.
func Merge(base, override Options) Options {
	merged := base

	if override.IsEqual != nil {
		merged.IsEqual = override.IsEqual
	}
	if override.IsMatchingKey != nil {
		merged.IsMatchingKey = override.IsMatchingKey
	}
	if override.MaxSize != 0 {
		merged.MaxSize = override.MaxSize
	}
	if override.OnCacheAdd != nil {
		merged.OnCacheAdd = override.OnCacheAdd
	}
	if override.OnCacheChange != nil {
		merged.OnCacheChange = override.OnCacheChange
	}
	if override.OnCacheHit != nil {
		merged.OnCacheHit = override.OnCacheHit
	}
	if override.TransformKey != nil {
		merged.TransformKey = override.TransformKey
	}
	if override.Profile != "" {
		merged.Profile = override.Profile
	}
	merged.Async = base.Async || override.Async
	merged.CollectStats = base.CollectStats || override.CollectStats

	return merged
}

// core projects the wrapper options onto the cache core's option record.
// The locker serializes settlement-time mutation with ordinary calls.
func (o Options) core(locker sync.Locker) cache.Options {
	return cache.Options{
		IsEqual:       o.IsEqual,
		IsMatchingKey: o.IsMatchingKey,
		MaxSize:       o.MaxSize,
		OnCacheHit:    o.OnCacheHit,
		OnCacheChange: o.OnCacheChange,
		Locker:        locker,
	}
}
