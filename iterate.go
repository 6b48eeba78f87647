package bintrie

import "iter"

// Items returns an iterator over all items in the trie, in depth-first
// pre-order of the node tree. Each call to the returned function starts a
// fresh traversal.
func (t *trie) Items() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := newItemIterator(t)
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Iterator returns a pull-style iterator over all items in the trie.
func (t *trie) Iterator() *ItemIterator {
	return newItemIterator(t)
}

// ItemIterator walks all items of a trie. It keeps an explicit stack of
// frames, one per node on the current path, so traversal depth is not bound
// to the call stack.
//
// The trie must not be modified while an iterator is in use.
type ItemIterator struct {
	trie   *trie
	frames []itemFrame
}

// itemFrame remembers the next slot to visit within a node.
type itemFrame struct {
	node   uint32
	cursor uint32
}

func newItemIterator(t *trie) *ItemIterator {
	return &ItemIterator{
		trie:   t,
		frames: append(make([]itemFrame, 0, 8), itemFrame{}),
	}
}

// Next returns the next item. If the traversal is exhausted, ok is false.
func (it *ItemIterator) Next() (item uint32, ok bool) {
	if it == nil {
		return 0, false
	}
	st := &it.trie.store
	for len(it.frames) > 0 {
		top := &it.frames[len(it.frames)-1]
		if top.cursor == st.arity {
			it.frames = it.frames[:len(it.frames)-1]
			continue
		}
		s := st.slots[st.index(top.node, top.cursor)]
		top.cursor++
		switch {
		case s.isEmpty():
		case s.isLeaf():
			return s.item(), true
		default:
			it.frames = append(it.frames, itemFrame{node: s.node()})
		}
	}
	return 0, false
}
