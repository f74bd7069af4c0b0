package cache

import (
	"context"
	"sync"
)

// Future is an asynchronous cache value: a computation that settles
// exactly once, to either success or failure.
//
// Contract:
// - Concurrency: all methods are safe for concurrent use.
// - Settlement: the first Resolve or Reject wins; later calls are no-ops.
// - Errors: a settlement failure is reported unmodified to every observer.
type Future struct {
	mu      sync.Mutex
	done    chan struct{}
	settled bool
	value   any
	err     error
	subs    []func(value any, err error)
}

// NewFuture returns an unsettled future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Go runs fn on a new goroutine and settles the returned future with its
// result: Resolve on a nil error, Reject otherwise.
func Go(fn func() (any, error)) *Future {
	f := NewFuture()
	go func() {
		v, err := fn()
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// Resolve settles the future successfully with v. No-op if already settled.
func (f *Future) Resolve(v any) {
	f.settle(v, nil)
}

// Reject settles the future as failed with err. No-op if already settled.
func (f *Future) Reject(err error) {
	f.settle(nil, err)
}

// Settled reports whether the future has settled.
func (f *Future) Settled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settled
}

// Done returns a channel that is closed once the future settles.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the future settles or ctx is canceled. On
// settlement it returns the value and the original, unmodified failure;
// on cancellation it returns ctx.Err().
func (f *Future) Result(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// settle records the outcome once and runs subscribers on the settling
// goroutine, outside the lock.
func (f *Future) settle(v any, err error) {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return
	}
	f.settled = true
	f.value = v
	f.err = err
	subs := f.subs
	f.subs = nil
	close(f.done)
	f.mu.Unlock()

	for _, sub := range subs {
		sub(v, err)
	}
}

// onSettle registers fn to run when the future settles. Handlers never
// run on the registering goroutine: if the future has already settled,
// fn is deferred to a new goroutine, so a registrant may hold the
// Options.Locker it hands the handler.
func (f *Future) onSettle(fn func(value any, err error)) {
	f.mu.Lock()
	if !f.settled {
		f.subs = append(f.subs, fn)
		f.mu.Unlock()
		return
	}
	v, err := f.value, f.err
	f.mu.Unlock()
	go fn(v, err)
}

// NewAsyncUpdater returns the settlement coordinator for the configured
// options. Calling the coordinator attaches settlement handling to the
// pending Future at the cache's most-recently-used slot; it performs no
// immediate mutation and is a no-op when slot 0 does not hold an
// unsettled-or-settled *Future.
//
// The handler keeps a copy of the slot's key, not its index: by
// settlement time the cache may have been reordered, the entry evicted,
// or the slot reused for an unrelated key, so identity is re-verified by
// key lookup under the configured matching strategy.
//
//   - Success: if the key is still cached, OnCacheHit fires, then
//     OnCacheChange. If not, nothing happens; a stale entry is never
//     resurrected.
//   - Failure: if the key is still cached, that entry is removed from
//     both sequences. The failure itself still surfaces through the
//     Future to any observer; the coordinator only cleans up.
//
// When Options.Locker is set it is held around the settlement-time
// lookup and mutation, serializing with the cache's owner.
func NewAsyncUpdater(o Options) func(c *Cache, memoized any) {
	getKeyIndex := NewKeyIndex(o)

	return func(c *Cache, memoized any) {
		if c.Size() == 0 {
			return
		}
		fut, ok := c.Values[0].(*Future)
		if !ok {
			return
		}
		key := c.Keys[0]

		fut.onSettle(func(_ any, err error) {
			if o.Locker != nil {
				o.Locker.Lock()
				defer o.Locker.Unlock()
			}

			index := getKeyIndex(c.Keys, key)
			if index < 0 {
				return
			}
			if err != nil {
				c.removeAt(index)
				return
			}
			if o.OnCacheHit != nil {
				o.OnCacheHit(c, o, memoized)
			}
			if o.OnCacheChange != nil {
				o.OnCacheChange(c, o, memoized)
			}
		})
	}
}
