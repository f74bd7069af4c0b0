package cache

import (
	"reflect"
	"testing"
)

// TestCache_SizeTracksLength verifies Size mirrors the key count through
// insertions, promotions, and evictions.
func TestCache_SizeTracksLength(t *testing.T) {
	c := New()
	if c.Size() != 0 {
		t.Fatalf("empty cache size = %d, want 0", c.Size())
	}

	OrderByLRU(c, Key{"k1"}, 1, 0, 2)
	OrderByLRU(c, Key{"k2"}, 2, 1, 2)
	if c.Size() != 2 {
		t.Fatalf("size = %d, want 2", c.Size())
	}

	OrderByLRU(c, Key{"k3"}, 3, 2, 2)
	if c.Size() != 2 {
		t.Fatalf("size after eviction = %d, want 2", c.Size())
	}
	if len(c.Keys) != len(c.Values) {
		t.Fatalf("keys %d values %d diverged", len(c.Keys), len(c.Values))
	}
}

// TestCache_Snapshot verifies snapshots are detached copies.
func TestCache_Snapshot(t *testing.T) {
	c := newTestCache("k1", "k2")

	keys, values := c.Snapshot()
	if !reflect.DeepEqual(keys, []Key{{"k1"}, {"k2"}}) {
		t.Errorf("snapshot keys = %v", keys)
	}
	if !reflect.DeepEqual(values, []any{"value-k1", "value-k2"}) {
		t.Errorf("snapshot values = %v", values)
	}

	keys[0] = Key{"mutated"}
	values[0] = "mutated"
	if c.Keys[0][0] != "k1" || c.Values[0] != "value-k1" {
		t.Error("mutating a snapshot reached the live cache")
	}
}

// TestCache_Clear verifies Clear empties both sequences.
func TestCache_Clear(t *testing.T) {
	c := newTestCache("k1", "k2", "k3")
	c.Clear()

	if c.Size() != 0 || len(c.Values) != 0 {
		t.Errorf("cleared cache: keys %v values %v", c.Keys, c.Values)
	}
}

// TestEndToEnd_LookupPromotes runs lookup then reorder for a middle hit:
// [k1 k2 k3], hit on k2, expect [k2 k1 k3].
func TestEndToEnd_LookupPromotes(t *testing.T) {
	c := newTestCache("k1", "k2", "k3")
	getKeyIndex := NewKeyIndex(Options{})

	index := getKeyIndex(c.Keys, Key{"k2"})
	if index != 1 {
		t.Fatalf("getKeyIndex = %d, want 1", index)
	}
	OrderByLRU(c, c.Keys[index], c.Values[index], index, 3)

	if got := keyOrder(c); !reflect.DeepEqual(got, []string{"k2", "k1", "k3"}) {
		t.Errorf("order = %v, want [k2 k1 k3]", got)
	}
}

// TestEndToEnd_MissInserts runs lookup then insert for a miss under a
// roomy bound: [k1 k2 k3] + k4 with maxSize 4 → [k4 k1 k2 k3].
func TestEndToEnd_MissInserts(t *testing.T) {
	c := newTestCache("k1", "k2", "k3")
	getKeyIndex := NewKeyIndex(Options{MaxSize: 4})

	key := Key{"k4"}
	index := getKeyIndex(c.Keys, key)
	if index != -1 {
		t.Fatalf("getKeyIndex = %d, want -1", index)
	}
	OrderByLRU(c, key, "value-k4", c.Size(), 4)

	if got := keyOrder(c); !reflect.DeepEqual(got, []string{"k4", "k1", "k2", "k3"}) {
		t.Errorf("order = %v, want [k4 k1 k2 k3]", got)
	}
	if c.Size() != 4 {
		t.Errorf("size = %d, want 4", c.Size())
	}
}
