package bintrie

import (
	"slices"
	"testing"

	"github.com/npillmayer/bintrie/heuristic"
	"github.com/npillmayer/bintrie/keys"
)

func TestItemsPreOrder(t *testing.T) {
	trie := threeItems(t)
	items := slices.Collect(trie.Items())
	if !slices.Equal(items, []uint32{3, 5, 7}) {
		t.Errorf("expected [3 5 7], got %v", items)
	}
}

func TestItemsEmptyTrie(t *testing.T) {
	trie := New()
	for item := range trie.Items() {
		t.Fatalf("expected no items, got %d", item)
	}
	if _, ok := NewGroupTrie().Iterator().Next(); ok {
		t.Errorf("expected exhausted iterator on empty group trie")
	}
}

func TestItemsComplete(t *testing.T) {
	vals := randomKeys(3000, 1)
	resolve := func(item uint32) uint64 { return vals[item] }
	trie := New()
	for i, v := range vals {
		trie.Insert(uint32(i), keys.Bits64(v), keys.LookupBits64(resolve))
	}
	items := slices.Collect(trie.Items())
	if len(items) != len(vals) {
		t.Fatalf("expected %d items, got %d", len(vals), len(items))
	}
	slices.Sort(items)
	for i, item := range items {
		if item != uint32(i) {
			t.Fatalf("item %d missing or duplicated", i)
		}
	}
}

func TestItemsRestartable(t *testing.T) {
	trie := threeItems(t)
	seq := trie.Items()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("expected identical traversals, got %v and %v", first, second)
	}
}

func TestItemsEarlyBreak(t *testing.T) {
	trie := threeItems(t)
	var seen []uint32
	for item := range trie.Items() {
		seen = append(seen, item)
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []uint32{3, 5}) {
		t.Errorf("expected [3 5], got %v", seen)
	}
}

func TestItemIteratorExhaustion(t *testing.T) {
	trie := threeItems(t)
	it := trie.Iterator()
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	if n != 3 {
		t.Errorf("expected 3 items, got %d", n)
	}
	if _, ok := it.Next(); ok {
		t.Errorf("expected exhausted iterator to stay exhausted")
	}
	var nilIterator *ItemIterator
	if _, ok := nilIterator.Next(); ok {
		t.Errorf("expected nil iterator to be empty")
	}
}

func TestItemsDeepChain(t *testing.T) {
	trie := New()
	trie.Insert(1, zeroKey, zeroLookup)
	trie.Insert(2, func(depth uint32) bool { return depth == DefaultMaxDepth-1 }, zeroLookup)
	if trie.NodeCount() != int(DefaultMaxDepth) {
		t.Fatalf("expected a chain of %d nodes, have %d", DefaultMaxDepth, trie.NodeCount())
	}
	items := slices.Collect(trie.Items())
	if !slices.Equal(items, []uint32{1, 2}) {
		t.Errorf("expected [1 2], got %v", items)
	}
	explored := slices.Collect(trie.Explore(heuristic.All[bool]()))
	if !slices.Equal(explored, items) {
		t.Errorf("expected exploration with All to match Items, got %v", explored)
	}
}
