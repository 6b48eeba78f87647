package bintrie

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/bintrie/keys"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func zeroKey(uint32) bool            { return false }
func oneKey(uint32) bool             { return true }
func zeroLookup(uint32, uint32) bool { return false }

// pathKey yields the bits of path, then false.
func pathKey(path []bool) BitKey {
	return func(depth uint32) bool {
		if int(depth) < len(path) {
			return path[depth]
		}
		return false
	}
}

// pathLookup resolves items to their paths in table.
func pathLookup(table map[uint32][]bool) BitLookup {
	return func(item, depth uint32) bool {
		return pathKey(table[item])(depth)
	}
}

// threeItems is a trie with 3 at 0…, 5 at 10… and 7 at 11….
func threeItems(t *testing.T) *BinTrie {
	table := map[uint32][]bool{
		3: {false, false},
		5: {true, false},
		7: {true, true},
	}
	trie := NewDepth(4)
	for _, item := range []uint32{3, 5, 7} {
		if _, replaced := trie.Insert(item, pathKey(table[item]), pathLookup(table)); replaced {
			t.Fatalf("unexpected replacement inserting %d", item)
		}
	}
	return trie
}

func randomKeys(n int, seed int64) []uint64 {
	r := rand.New(rand.NewSource(seed))
	seen := make(map[uint64]bool, n)
	vals := make([]uint64, 0, n)
	for len(vals) < n {
		v := r.Uint64()
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	return vals
}

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, r)
		}
	}()
	f()
}

func TestSingleItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintrie")
	defer teardown()
	//
	trie := NewDepth(4)
	trie.Insert(5, zeroKey, zeroLookup)
	items := slices.Collect(trie.Items())
	if len(items) != 1 || items[0] != 5 {
		t.Fatalf("expected items [5], got %v", items)
	}
	if item, ok := trie.Get(zeroKey); !ok || item != 5 {
		t.Errorf("expected Get to find 5, got %d/%v", item, ok)
	}
	if item, ok := trie.Get(oneKey); ok {
		t.Errorf("expected Get with other key to fail, found %d", item)
	}
	if trie.Len() != 1 || trie.NodeCount() != 1 {
		t.Errorf("unexpected trie state len=%d nodes=%d", trie.Len(), trie.NodeCount())
	}
}

func TestNewDefaults(t *testing.T) {
	trie := New()
	if trie.MaxDepth() != DefaultMaxDepth {
		t.Errorf("expected default depth %d, got %d", DefaultMaxDepth, trie.MaxDepth())
	}
	if trie.Ceiling() != CeilingOverwrite {
		t.Errorf("expected binary trie to overwrite at ceiling, policy is %s", trie.Ceiling())
	}
	if err := trie.Check(); err != nil {
		t.Errorf("expected empty trie to be valid, got %v", err)
	}
}

func TestNewDepthZeroPanics(t *testing.T) {
	expectPanic(t, ErrZeroDepth, func() {
		NewDepth(0)
	})
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := NewWithConfig(Config{Ceiling: CeilingPolicy(42)})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestInsertReservedBitPanics(t *testing.T) {
	trie := New()
	expectPanic(t, ErrReservedBit, func() {
		trie.Insert(leafTag|1, zeroKey, zeroLookup)
	})
	if trie.Len() != 0 {
		t.Errorf("expected rejected item to leave trie empty")
	}
}

func TestSplitOnCollision(t *testing.T) {
	trie := threeItems(t)
	if trie.NodeCount() != 2 {
		t.Errorf("expected 1 split, have %d nodes", trie.NodeCount())
	}
	for item, path := range map[uint32][]bool{3: {false}, 5: {true, false}, 7: {true, true}} {
		got, ok := trie.Get(pathKey(path))
		if !ok || got != item {
			t.Errorf("expected %d at %v, got %d/%v", item, path, got, ok)
		}
	}
	if err := trie.Check(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestCeilingOverwrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintrie")
	defer teardown()
	//
	trie := NewDepth(4)
	if _, replaced := trie.Insert(1, zeroKey, zeroLookup); replaced {
		t.Fatalf("first insert must not replace anything")
	}
	prev, replaced := trie.Insert(2, zeroKey, zeroLookup)
	if !replaced || prev != 1 {
		t.Fatalf("expected second insert to dislodge 1, got %d/%v", prev, replaced)
	}
	if item, ok := trie.Get(zeroKey); !ok || item != 2 {
		t.Errorf("expected Get to find 2, got %d/%v", item, ok)
	}
	if trie.Len() != 1 {
		t.Errorf("expected 1 resident item, have %d", trie.Len())
	}
	if trie.NodeCount() != 4 {
		t.Errorf("expected a chain of 4 nodes, have %d", trie.NodeCount())
	}
	if err := trie.Check(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestCeilingDropForBinaryTrie(t *testing.T) {
	trie, err := NewWithConfig(Config{MaxDepth: 4, Ceiling: CeilingDrop})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	trie.Insert(1, zeroKey, zeroLookup)
	if prev, replaced := trie.Insert(2, zeroKey, zeroLookup); replaced {
		t.Fatalf("expected drop, got replacement of %d", prev)
	}
	if item, _ := trie.Get(zeroKey); item != 1 {
		t.Errorf("expected first item to survive, found %d", item)
	}
	if items := slices.Collect(trie.Items()); len(items) != 1 {
		t.Errorf("expected 1 item, got %v", items)
	}
}

func TestDepthOne(t *testing.T) {
	trie := NewDepth(1)
	trie.Insert(1, zeroKey, zeroLookup)
	trie.Insert(2, oneKey, zeroLookup)
	if prev, replaced := trie.Insert(3, oneKey, zeroLookup); !replaced || prev != 2 {
		t.Errorf("expected 3 to replace 2 in the root, got %d/%v", prev, replaced)
	}
	if trie.NodeCount() != 1 {
		t.Errorf("depth 1 trie must not split, has %d nodes", trie.NodeCount())
	}
}

func TestRoundTripRandomKeys(t *testing.T) {
	vals := randomKeys(2000, 7)
	resolve := func(item uint32) uint64 { return vals[item] }
	trie := New()
	for i, v := range vals {
		if _, replaced := trie.Insert(uint32(i), keys.Bits64(v), keys.LookupBits64(resolve)); replaced {
			t.Fatalf("unexpected replacement at item %d", i)
		}
	}
	if trie.Len() != len(vals) {
		t.Fatalf("expected %d items, have %d", len(vals), trie.Len())
	}
	for i, v := range vals {
		item, ok := trie.Get(keys.Bits64(v))
		if !ok || item != uint32(i) {
			t.Fatalf("expected item %d for key %x, got %d/%v", i, v, item, ok)
		}
	}
	if err := trie.Check(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestHashedKeys(t *testing.T) {
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta"}
	resolve := func(item uint32) []byte { return []byte(words[item]) }
	trie := New()
	for i, w := range words {
		trie.Insert(uint32(i), keys.HashBits([]byte(w)), keys.LookupHashBits(resolve))
	}
	for i, w := range words {
		if item, ok := trie.Get(keys.HashBits([]byte(w))); !ok || item != uint32(i) {
			t.Errorf("expected %q to map to %d, got %d/%v", w, i, item, ok)
		}
	}
}

func TestStoreOverflowPanics(t *testing.T) {
	trie := New()
	trie.store.limit = 2
	trie.Insert(1, zeroKey, zeroLookup)
	expectPanic(t, ErrStoreOverflow, func() {
		trie.InsertUnchecked(2, zeroKey, zeroLookup)
	})
}
