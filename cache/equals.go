package cache

import (
	"math"
	"reflect"
)

// SameValueZero reports whether a and b are the same value under
// same-value-zero semantics: ordinary equality, except that the
// not-a-number value equals itself. Positive and negative zero compare
// equal, as under ordinary numeric equality.
//
// Values of different dynamic types are never equal. Slices, maps,
// functions, channels, and pointers compare by identity, not structure:
// two distinct but structurally equal references are unequal.
func SameValueZero(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && (x == y || (math.IsNaN(x) && math.IsNaN(y)))
	case float32:
		y, ok := b.(float32)
		return ok && (x == y || (math.IsNaN(float64(x)) && math.IsNaN(float64(y))))
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice:
		// Identity: same backing array and same length.
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.UnsafePointer() == vb.UnsafePointer()
	}

	if !va.Comparable() {
		// Uncomparable composites (e.g. structs holding slices) have no
		// identity to compare; they never match.
		return false
	}
	return a == b
}

// NewKeysEqual returns a whole-key comparator built from per-element
// equality: keys of different lengths never match, and every positional
// pair must satisfy isEqual. The returned comparator has no side effects.
func NewKeysEqual(isEqual EqualFunc) MatchKeyFunc {
	return func(a, b Key) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !isEqual(a[i], b[i]) {
				return false
			}
		}
		return true
	}
}
