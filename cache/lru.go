package cache

// OrderByLRU repositions the cache in place so that key/value occupies
// the most-recently-used slot (index 0), preserving index alignment and
// the relative order of all other entries.
//
// itemIndex is the slot the key currently occupies, or len(c.Keys) when
// the key is new:
//   - len(c.Keys): the pair is inserted at the front. If that pushes the
//     length past maxSize (and maxSize >= 1), the oldest entry at the
//     tail is dropped so the length never exceeds maxSize. A maxSize
//     <= 0 means unbounded and never evicts. On an empty cache every
//     itemIndex is this case.
//   - 0: the entry is already most recently used; nothing is touched.
//   - middle: the entry is moved to the front; length is unchanged.
func OrderByLRU(c *Cache, key Key, value any, itemIndex, maxSize int) {
	switch {
	case itemIndex >= len(c.Keys):
		c.Keys = append(c.Keys, nil)
		copy(c.Keys[1:], c.Keys)
		c.Keys[0] = key

		c.Values = append(c.Values, nil)
		copy(c.Values[1:], c.Values)
		c.Values[0] = value

		if maxSize > 0 && len(c.Keys) > maxSize {
			c.Keys[maxSize] = nil
			c.Keys = c.Keys[:maxSize]
			c.Values[maxSize] = nil
			c.Values = c.Values[:maxSize]
		}

	case itemIndex == 0:
		// Already at the front.

	default:
		k, v := c.Keys[itemIndex], c.Values[itemIndex]
		copy(c.Keys[1:itemIndex+1], c.Keys[:itemIndex])
		copy(c.Values[1:itemIndex+1], c.Values[:itemIndex])
		c.Keys[0], c.Values[0] = k, v
	}
}
