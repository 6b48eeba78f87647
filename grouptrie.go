package bintrie

import (
	"fmt"
	"iter"

	"github.com/npillmayer/bintrie/heuristic"
)

// GroupKey yields the 4-bit group of a key at a given depth.
type GroupKey func(depth uint32) heuristic.Group

// GroupLookup yields the group at a given depth of the key of a stored item.
type GroupLookup func(item uint32, depth uint32) heuristic.Group

// GroupTrie is a trie which branches on 4-bit groups of a key, i.e. each node
// has 16 slots. At the depth ceiling it defaults to CeilingDrop.
type GroupTrie struct {
	trie
}

// NewGroupTrie creates a group trie with a maximum depth of DefaultMaxDepth.
func NewGroupTrie() *GroupTrie {
	t, err := NewGroupTrieWithConfig(Config{})
	assert(err == nil, "NewGroupTrie: default config must be valid")
	return t
}

// NewGroupTrieDepth creates a group trie with a given maximum depth.
// depth must be > 0, otherwise NewGroupTrieDepth panics.
func NewGroupTrieDepth(depth uint32) *GroupTrie {
	if depth == 0 {
		panic(ErrZeroDepth)
	}
	t, err := NewGroupTrieWithConfig(Config{MaxDepth: depth})
	assert(err == nil, "NewGroupTrieDepth: config must be valid")
	return t
}

// NewGroupTrieWithConfig creates a group trie from a configuration. Unset
// fields get defaults.
func NewGroupTrieWithConfig(cfg Config) (*GroupTrie, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized(CeilingDrop)
	return &GroupTrie{trie: newTrie(groupArity, cfg)}, nil
}

// Insert adds item to the trie.
//
// key yields the groups of the item's key, depth by depth. lookup must be
// able to reproduce the key groups of any previously inserted item.
//
// Insert panics with ErrReservedBit if item has its most significant bit
// set, and with ErrPositionOutOfRange if key or lookup return a group ≥ 16.
// Collisions at the maximum depth are resolved by the ceiling policy.
func (t *GroupTrie) Insert(item uint32, key GroupKey, lookup GroupLookup) (prev uint32, replaced bool) {
	if item&leafTag != 0 {
		panic(fmt.Errorf("%w: %#x", ErrReservedBit, item))
	}
	return t.insert(item,
		func(depth uint32) uint32 { return checkedGroup(key(depth)) },
		func(m, depth uint32) uint32 { return checkedGroup(lookup(m, depth)) },
	)
}

// InsertUnchecked is like Insert, but trusts the caller completely: item
// must leave its most significant bit clear, and key and lookup must return
// groups below 16. Violating this is undefined behaviour; the trie may be
// corrupted silently.
func (t *GroupTrie) InsertUnchecked(item uint32, key GroupKey, lookup GroupLookup) (prev uint32, replaced bool) {
	return t.insert(item,
		func(depth uint32) uint32 { return uint32(key(depth)) },
		func(m, depth uint32) uint32 { return uint32(lookup(m, depth)) },
	)
}

// Get returns the item found along the path of key. It panics with
// ErrPositionOutOfRange if key returns a group ≥ 16.
func (t *GroupTrie) Get(key GroupKey) (uint32, bool) {
	return t.get(func(depth uint32) uint32 { return checkedGroup(key(depth)) })
}

// Explore returns an iterator over the items of the trie, visited in the
// order chosen by h. h serves as the starting state and is never modified.
// Choices ≥ 16 produced by h let the iteration panic with
// ErrPositionOutOfRange.
func (t *GroupTrie) Explore(h heuristic.Heuristic[heuristic.Group]) iter.Seq[uint32] {
	return explore(&t.trie, h, checkedGroup)
}

// ExploreUnchecked is like Explore, but does not validate the choices of h.
// h must never produce a group ≥ 16, otherwise behaviour is undefined.
func (t *GroupTrie) ExploreUnchecked(h heuristic.Heuristic[heuristic.Group]) iter.Seq[uint32] {
	return explore(&t.trie, h, uncheckedGroup)
}

// Explorer returns a pull-style iterator for a guided exploration with h.
func (t *GroupTrie) Explorer(h heuristic.Heuristic[heuristic.Group]) *Explorer[heuristic.Group] {
	return newExplorer(&t.trie, h, checkedGroup)
}

func checkedGroup(g heuristic.Group) uint32 {
	if g >= heuristic.GroupCount {
		panic(fmt.Errorf("%w: group %d", ErrPositionOutOfRange, g))
	}
	return uint32(g)
}

func uncheckedGroup(g heuristic.Group) uint32 {
	return uint32(g)
}
