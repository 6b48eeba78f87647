package bintrie

import "fmt"

const (
	binaryArity = 2
	groupArity  = 16
)

// emptyNode is the template for freshly appended nodes.
var emptyNode [groupArity]slot

// store is an append-only arena of nodes. A node is a window of arity
// consecutive slots; node i occupies slots[i*arity : (i+1)*arity].
// The root node is always at index 0.
type store struct {
	arity uint32
	slots []slot
	// limit is the largest node index that may be handed out.
	limit uint32
}

func newStore(arity uint32) store {
	assert(arity == binaryArity || arity == groupArity, "store arity must be 2 or 16")
	st := store{
		arity: arity,
		limit: maxNodeIndex,
	}
	st.slots = append(st.slots, emptyNode[:arity]...)
	return st
}

// nodeCount returns the number of nodes, including the root.
func (st *store) nodeCount() int {
	return len(st.slots) / int(st.arity)
}

// index returns the position of slot pos of node n in the arena.
func (st *store) index(n, pos uint32) int {
	return int(n)*int(st.arity) + int(pos)
}

// node returns the slots of node n.
func (st *store) node(n uint32) []slot {
	start := int(n) * int(st.arity)
	return st.slots[start : start+int(st.arity)]
}

// appendNode adds an empty node and returns its index. Running out of
// addressable indices is fatal, even for unchecked operations.
func (st *store) appendNode() uint32 {
	n := st.nodeCount()
	if uint64(n) > uint64(st.limit) {
		panic(fmt.Errorf("%w: node index %d exceeds %d", ErrStoreOverflow, n, st.limit))
	}
	st.slots = append(st.slots, emptyNode[:st.arity]...)
	return uint32(n)
}
