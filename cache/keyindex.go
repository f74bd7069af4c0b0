package cache

// KeyIndexFunc locates a candidate key within the cache's current key
// list. It scans from index 0 upward (most-recently-used first) and
// returns the index of the first match, or -1 if none matches.
//
// The scan is linear, so the worst case is O(n) in cache size; with
// temporal locality the match typically sits near the front.
type KeyIndexFunc func(allKeys []Key, keyToMatch Key) int

// NewKeyIndex builds a locator for the matching strategy configured in o.
// The strategy is selected once: a whole-key override when IsMatchingKey
// is set, per-element comparison otherwise. MaxSize has no effect on
// matching; the capacity bound is owned by OrderByLRU.
func NewKeyIndex(o Options) KeyIndexFunc {
	if o.IsMatchingKey != nil {
		match := o.IsMatchingKey
		return func(allKeys []Key, keyToMatch Key) int {
			for i, stored := range allKeys {
				if match(stored, keyToMatch) {
					return i
				}
			}
			return -1
		}
	}

	keysEqual := NewKeysEqual(o.equal())
	return func(allKeys []Key, keyToMatch Key) int {
		for i, stored := range allKeys {
			if keysEqual(stored, keyToMatch) {
				return i
			}
		}
		return -1
	}
}
