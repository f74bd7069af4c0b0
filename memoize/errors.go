package memoize

import "errors"

// Sentinel errors for memoization.
var (
	// ErrNilFunc is returned by New when the function to wrap is nil.
	ErrNilFunc = errors.New("memoize: function is nil")

	// ErrNotFuture is returned by Call when an Async function returns a
	// value that is not a *cache.Future.
	ErrNotFuture = errors.New("memoize: async function must return a *cache.Future")
)
