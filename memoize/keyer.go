package memoize

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/amit08255/micro-memoize/cache"
)

// SerializeKey returns a TransformKey that collapses an argument list to
// a single deterministic string element: the hex form of the SHA-256 of
// the canonical JSON rendering of the arguments.
//
// Determinism holds regardless of map iteration order. Arguments that
// cannot be rendered as JSON (functions, channels) fall back to their
// formatted representation, which is stable only per process; such
// arguments are better matched with IsEqual or IsMatchingKey.
//
// Serialized keys trade identity matching for structural matching: two
// distinct but structurally equal arguments produce the same key.
func SerializeKey() func(key cache.Key) cache.Key {
	return func(key cache.Key) cache.Key {
		canonical := []byte("[")
		for i, arg := range key {
			if i > 0 {
				canonical = append(canonical, ',')
			}
			canonical = append(canonical, canonicalize(arg)...)
		}
		canonical = append(canonical, ']')

		hash := sha256.Sum256(canonical)
		return cache.Key{hex.EncodeToString(hash[:])}
	}
}

// canonicalize produces a deterministic JSON rendering of v. Maps are
// sorted by key.
func canonicalize(v any) []byte {
	if v == nil {
		return []byte("null")
	}

	switch val := v.(type) {
	case map[string]any:
		return canonicalizeMap(val)
	case []any:
		return canonicalizeSlice(val)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			// Unmarshalable argument; fall back to the formatted form.
			return []byte(fmt.Sprintf("%q", fmt.Sprintf("%#v", v)))
		}
		return b
	}
}

func canonicalizeMap(m map[string]any) []byte {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []byte("{")
	for i, k := range keys {
		if i > 0 {
			result = append(result, ',')
		}
		keyBytes, _ := json.Marshal(k)
		result = append(result, keyBytes...)
		result = append(result, ':')
		result = append(result, canonicalize(m[k])...)
	}
	return append(result, '}')
}

func canonicalizeSlice(s []any) []byte {
	result := []byte("[")
	for i, v := range s {
		if i > 0 {
			result = append(result, ',')
		}
		result = append(result, canonicalize(v)...)
	}
	return append(result, ']')
}
