package bintrie

import (
	"fmt"
	"iter"

	"github.com/npillmayer/bintrie/heuristic"
)

// BitKey yields the bit of a key at a given depth.
type BitKey func(depth uint32) bool

// BitLookup yields the bit at a given depth of the key of a stored item.
type BitLookup func(item uint32, depth uint32) bool

// BinTrie is a trie which branches on single key bits.
//
// A BinTrie created by New is empty and ready to use. At the depth ceiling
// it defaults to CeilingOverwrite.
type BinTrie struct {
	trie
}

// New creates a binary trie with a maximum depth of DefaultMaxDepth.
func New() *BinTrie {
	t, err := NewWithConfig(Config{})
	assert(err == nil, "New: default config must be valid")
	return t
}

// NewDepth creates a binary trie with a given maximum depth.
// depth must be > 0, otherwise NewDepth panics.
func NewDepth(depth uint32) *BinTrie {
	if depth == 0 {
		panic(ErrZeroDepth)
	}
	t, err := NewWithConfig(Config{MaxDepth: depth})
	assert(err == nil, "NewDepth: config must be valid")
	return t
}

// NewWithConfig creates a binary trie from a configuration. Unset fields
// get defaults.
func NewWithConfig(cfg Config) (*BinTrie, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized(CeilingOverwrite)
	return &BinTrie{trie: newTrie(binaryArity, cfg)}, nil
}

// Insert adds item to the trie.
//
// key yields the bits of the item's key, depth by depth. lookup must be able
// to reproduce the key bits of any previously inserted item.
//
// If the item collides with another one at the maximum depth, the ceiling
// policy applies. With CeilingOverwrite the former occupant is returned and
// replaced is true.
//
// Insert panics with ErrReservedBit if item has its most significant bit set.
func (t *BinTrie) Insert(item uint32, key BitKey, lookup BitLookup) (prev uint32, replaced bool) {
	if item&leafTag != 0 {
		panic(fmt.Errorf("%w: %#x", ErrReservedBit, item))
	}
	return t.InsertUnchecked(item, key, lookup)
}

// InsertUnchecked is like Insert, but does not verify that item leaves its
// most significant bit clear. Inserting such an item corrupts the trie.
func (t *BinTrie) InsertUnchecked(item uint32, key BitKey, lookup BitLookup) (prev uint32, replaced bool) {
	return t.insert(item,
		func(depth uint32) uint32 { return bitpos(key(depth)) },
		func(m, depth uint32) uint32 { return bitpos(lookup(m, depth)) },
	)
}

// Get returns the item found along the path of key.
//
// The trie does not store keys, so the item returned is the only candidate
// sharing key's path; it is the caller's business to verify it.
func (t *BinTrie) Get(key BitKey) (uint32, bool) {
	return t.get(func(depth uint32) uint32 { return bitpos(key(depth)) })
}

// Explore returns an iterator over the items of the trie, visited in the
// order chosen by h. h serves as the starting state and is never modified;
// each traversal works on clones of h.
func (t *BinTrie) Explore(h heuristic.Heuristic[bool]) iter.Seq[uint32] {
	return explore(&t.trie, h, bitpos)
}

// Explorer returns a pull-style iterator for a guided exploration with h.
func (t *BinTrie) Explorer(h heuristic.Heuristic[bool]) *Explorer[bool] {
	return newExplorer(&t.trie, h, bitpos)
}

func bitpos(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
