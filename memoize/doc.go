// Package memoize wraps functions with the cache core: repeated calls
// with matching argument lists reuse the cached or in-flight result
// under a least-recently-used eviction policy.
//
// It owns the concerns the core treats as external: option merging and
// defaults, key transformation, statistics collection, and serializing
// concurrent access to the cache.
package memoize
