package bintrie

// trie is the engine shared by BinTrie and GroupTrie. It operates on plain
// slot positions; the public types translate bits or groups to positions and
// validate caller input where required.
type trie struct {
	cfg   Config
	store store
	count int // number of resident items
}

func newTrie(arity uint32, cfg Config) trie {
	assert(cfg.MaxDepth > 0, "trie requires normalized config")
	return trie{
		cfg:   cfg,
		store: newStore(arity),
	}
}

// insert files item under the key described by key. lookup must recover the
// position of a previously inserted item at a given depth.
//
// It returns the item dislodged at the depth ceiling, if any.
func (t *trie) insert(item uint32, key func(uint32) uint32, lookup func(uint32, uint32) uint32) (uint32, bool) {
	var n uint32 // root
	last := t.cfg.MaxDepth - 1
	for depth := uint32(0); depth < last; depth++ {
		pos := key(depth)
		i := t.store.index(n, pos)
		s := t.store.slots[i]
		switch {
		case s.isEmpty():
			t.store.slots[i] = leafSlot(item)
			t.count++
			return 0, false
		case s.isLeaf():
			// Two leaves compete for this slot: move the occupant one level down
			// and continue in the new node.
			occupant := s.item()
			child := t.store.appendNode()
			t.store.slots[t.store.index(child, lookup(occupant, depth+1))] = s
			t.store.slots[i] = nodeSlot(child)
			tracer().Debugf("bintrie: split at depth %d, new node %d", depth, child)
			n = child
		default:
			n = s.node()
		}
	}
	i := t.store.index(n, key(last))
	s := t.store.slots[i]
	if s.isEmpty() {
		t.store.slots[i] = leafSlot(item)
		t.count++
		return 0, false
	}
	assert(s.isLeaf(), "slot at maximum depth must not reference a node")
	if t.cfg.Ceiling == CeilingOverwrite {
		t.store.slots[i] = leafSlot(item)
		tracer().Debugf("bintrie: item %d replaces %d at depth ceiling", item, s.item())
		return s.item(), true
	}
	tracer().Debugf("bintrie: item %d dropped at depth ceiling", item)
	return 0, false
}

// get descends along key and returns the first item found.
func (t *trie) get(key func(uint32) uint32) (uint32, bool) {
	var n uint32
	for depth := uint32(0); depth < t.cfg.MaxDepth; depth++ {
		s := t.store.slots[t.store.index(n, key(depth))]
		switch {
		case s.isEmpty():
			return 0, false
		case s.isLeaf():
			return s.item(), true
		default:
			n = s.node()
		}
	}
	return 0, false
}

// Len returns the number of items resident in the trie.
func (t *trie) Len() int {
	return t.count
}

// NodeCount returns the number of nodes, including the root.
func (t *trie) NodeCount() int {
	return t.store.nodeCount()
}

// MaxDepth returns the depth bound of the trie.
func (t *trie) MaxDepth() uint32 {
	return t.cfg.MaxDepth
}

// Ceiling returns the effective collision policy at the depth ceiling.
func (t *trie) Ceiling() CeilingPolicy {
	return t.cfg.Ceiling
}
