// Package cache implements the cache-management core behind function
// memoization.
//
// It provides key-equality resolution (same-value-zero semantics by
// default, with per-element and whole-key overrides), a bounded
// least-recently-used cache over index-aligned key/value slices, and a
// settlement coordinator that keeps the cache consistent when a cached
// value is an asynchronous Future.
package cache
