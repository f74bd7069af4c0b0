package cache

import (
	"math"
	"testing"
)

// TestSameValueZero_Primitives tests equality of primitive values.
func TestSameValueZero_Primitives(t *testing.T) {
	tests := []struct {
		name string
		a    any
		b    any
		want bool
	}{
		{"equal ints", 1, 1, true},
		{"unequal ints", 1, 2, false},
		{"equal strings", "foo", "foo", true},
		{"unequal strings", "foo", "bar", false},
		{"equal bools", true, true, true},
		{"int vs int64", int(1), int64(1), false},
		{"int vs string", 1, "1", false},
		{"both nil", nil, nil, true},
		{"nil vs value", nil, 0, false},
		{"value vs nil", 0, nil, false},
		{"equal floats", 1.5, 1.5, true},
		{"nan equals nan", math.NaN(), math.NaN(), true},
		{"nan vs number", math.NaN(), 1.0, false},
		{"number vs nan", 1.0, math.NaN(), false},
		{"positive and negative zero", 0.0, math.Copysign(0, -1), true},
		{"float32 nan equals float32 nan", float32(math.NaN()), float32(math.NaN()), true},
		{"float32 nan vs float64 nan", float32(math.NaN()), math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameValueZero(tt.a, tt.b); got != tt.want {
				t.Errorf("SameValueZero(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestSameValueZero_References tests identity semantics for reference types.
func TestSameValueZero_References(t *testing.T) {
	s := []int{1, 2, 3}
	m := map[string]int{"a": 1}
	p := &struct{ n int }{n: 1}

	tests := []struct {
		name string
		a    any
		b    any
		want bool
	}{
		{"same slice", s, s, true},
		{"distinct equal slices", []int{1, 2, 3}, []int{1, 2, 3}, false},
		{"same map", m, m, true},
		{"distinct equal maps", map[string]int{"a": 1}, map[string]int{"a": 1}, false},
		{"same pointer", p, p, true},
		{"distinct pointers to equal structs", &struct{ n int }{n: 1}, &struct{ n int }{n: 1}, false},
		{"struct values equal", struct{ n int }{n: 1}, struct{ n int }{n: 1}, true},
		{"uncomparable struct values", struct{ s []int }{s: s}, struct{ s []int }{s: s}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameValueZero(tt.a, tt.b); got != tt.want {
				t.Errorf("SameValueZero(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestNewKeysEqual tests whole-key comparison built from element equality.
func TestNewKeysEqual(t *testing.T) {
	keysEqual := NewKeysEqual(SameValueZero)

	tests := []struct {
		name string
		a    Key
		b    Key
		want bool
	}{
		{"both empty", Key{}, Key{}, true},
		{"equal single", Key{"foo"}, Key{"foo"}, true},
		{"equal multi", Key{"foo", 1, true}, Key{"foo", 1, true}, true},
		{"different lengths", Key{"foo"}, Key{"foo", "bar"}, false},
		{"different element", Key{"foo", 1}, Key{"foo", 2}, false},
		{"nan elements", Key{math.NaN()}, Key{math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keysEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("keysEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestNewKeysEqual_Reflexivity verifies every key equals itself.
func TestNewKeysEqual_Reflexivity(t *testing.T) {
	keysEqual := NewKeysEqual(SameValueZero)

	keys := []Key{
		{},
		{"foo"},
		{1, 2.5, "bar", true, nil},
		{math.NaN()},
		{[]int{1}, map[string]int{"a": 1}},
	}

	for _, k := range keys {
		if !keysEqual(k, k) {
			t.Errorf("keysEqual(%v, %v) = false, want true", k, k)
		}
	}
}

// TestNewKeysEqual_CustomEquality verifies a caller-supplied element predicate.
func TestNewKeysEqual_CustomEquality(t *testing.T) {
	// Treat any two non-nil elements as equal.
	loose := func(a, b any) bool {
		return a == b || (a != nil && b != nil)
	}
	keysEqual := NewKeysEqual(loose)

	if !keysEqual(Key{1}, Key{2}) {
		t.Error("expected loose equality to match differing non-nil elements")
	}
	if keysEqual(Key{1}, Key{1, 2}) {
		t.Error("length check must apply even with a custom element predicate")
	}
}
