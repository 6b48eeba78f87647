package heuristic

// Nearest returns a heuristic which visits the children of a node at depth d
// in order of increasing XOR distance from target(d). For a trie keyed by the
// bits of some value v, exploring with Nearest(bits of q) yields items whose
// keys share the longest prefix with q first.
//
// The heuristic tracks the depth per branch.
func Nearest[C Choice](target func(depth uint32) C) Heuristic[C] {
	return &nearest[C]{target: target}
}

type nearest[C Choice] struct {
	target func(uint32) C
	depth  uint32
}

func (n *nearest[C]) Enter(C) {
	n.depth++
}

func (n *nearest[C]) Choices() Choices[C] {
	return &nearestChoices[C]{
		target: n.target(n.depth),
		deltas: domain[C](),
	}
}

func (n *nearest[C]) Clone() Heuristic[C] {
	c := *n
	return &c
}

// nearestChoices yields target^0, target^1, … which is the order of
// increasing XOR distance.
type nearestChoices[C Choice] struct {
	target C
	deltas []C
	next   int
}

func (it *nearestChoices[C]) Next() (C, bool) {
	if it.next >= len(it.deltas) {
		var zero C
		return zero, false
	}
	c := xor(it.target, it.deltas[it.next])
	it.next++
	return c, true
}
