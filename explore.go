package bintrie

import (
	"iter"

	"github.com/npillmayer/bintrie/heuristic"
)

// Explorer walks the items of a trie in the order chosen by a heuristic.
//
// Like ItemIterator it keeps an explicit stack of frames. Each frame holds
// the heuristic governing its node together with the live sequence of
// choices that heuristic produced. Entering a child clones the frame's
// heuristic and notifies the clone, so sibling branches start from the same
// state.
//
// The trie must not be modified while an explorer is in use.
type Explorer[C heuristic.Choice] struct {
	trie     *trie
	position func(C) uint32
	frames   []exploreFrame[C]
}

type exploreFrame[C heuristic.Choice] struct {
	node    uint32
	h       heuristic.Heuristic[C]
	choices heuristic.Choices[C]
}

// newExplorer starts a traversal at the root. position translates a choice
// into a slot position and may validate it.
func newExplorer[C heuristic.Choice](t *trie, h heuristic.Heuristic[C], position func(C) uint32) *Explorer[C] {
	assert(h != nil, "explorer requires a heuristic")
	root := h.Clone()
	return &Explorer[C]{
		trie:     t,
		position: position,
		frames: append(make([]exploreFrame[C], 0, 8), exploreFrame[C]{
			h:       root,
			choices: root.Choices(),
		}),
	}
}

// explore wraps an Explorer as a restartable iterator.
func explore[C heuristic.Choice](t *trie, h heuristic.Heuristic[C], position func(C) uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		ex := newExplorer(t, h, position)
		for {
			item, ok := ex.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Next returns the next item. If the exploration is exhausted, ok is false.
func (ex *Explorer[C]) Next() (item uint32, ok bool) {
	if ex == nil {
		return 0, false
	}
	st := &ex.trie.store
	for len(ex.frames) > 0 {
		top := &ex.frames[len(ex.frames)-1]
		choice, more := top.choices.Next()
		if !more {
			ex.frames = ex.frames[:len(ex.frames)-1]
			continue
		}
		s := st.slots[st.index(top.node, ex.position(choice))]
		switch {
		case s.isEmpty():
		case s.isLeaf():
			return s.item(), true
		default:
			h := top.h.Clone()
			h.Enter(choice)
			ex.frames = append(ex.frames, exploreFrame[C]{
				node:    s.node(),
				h:       h,
				choices: h.Choices(),
			})
		}
	}
	return 0, false
}
