package bintrie

import "fmt"

// Check validates structural trie invariants:
//
//   - the store holds whole nodes and at least the root,
//   - every node reference points into the store and never to the root,
//   - every node but the root is referenced exactly once (the nodes form a tree),
//   - no node reference occurs at the maximum depth,
//   - the number of leaves matches Len().
//
// Check is intended for tests and debugging; it visits the whole trie.
func (t *trie) Check() error {
	st := &t.store
	if st.arity == 0 || len(st.slots)%int(st.arity) != 0 {
		return fmt.Errorf("%w: store holds %d slots for arity %d", ErrInvalidConfig, len(st.slots), st.arity)
	}
	count := st.nodeCount()
	if count == 0 {
		return fmt.Errorf("%w: store has no root node", ErrInvalidConfig)
	}
	refs := make([]int, count)
	type visit struct {
		node  uint32
		depth uint32
	}
	stack := []visit{{node: 0, depth: 0}}
	leaves := 0
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for pos, s := range st.node(v.node) {
			switch {
			case s.isEmpty():
			case s.isLeaf():
				leaves++
			default:
				child := s.node()
				if int(child) >= count {
					return fmt.Errorf("%w: node %d slot %d references node %d of %d",
						ErrInvalidConfig, v.node, pos, child, count)
				}
				if v.depth+1 >= t.cfg.MaxDepth {
					return fmt.Errorf("%w: node reference at maximum depth %d", ErrInvalidConfig, v.depth)
				}
				refs[child]++
				if refs[child] > 1 {
					return fmt.Errorf("%w: node %d referenced more than once", ErrInvalidConfig, child)
				}
				stack = append(stack, visit{node: child, depth: v.depth + 1})
			}
		}
	}
	for n := 1; n < count; n++ {
		if refs[n] != 1 {
			return fmt.Errorf("%w: node %d is unreachable", ErrInvalidConfig, n)
		}
	}
	if leaves != t.count {
		return fmt.Errorf("%w: %d leaves, but Len() = %d", ErrInvalidConfig, leaves, t.count)
	}
	return nil
}
