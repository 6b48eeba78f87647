package heuristic

import "math/bits"

// Group is a 4-bit child position of a group trie.
type Group uint8

// GroupCount is the number of children of a group trie node.
const GroupCount = 16

// Choice is the type of a child position: bool for binary tries,
// Group for group tries.
type Choice interface {
	bool | Group
}

// Heuristic steers a guided exploration.
//
// Choices must not alter the state of the heuristic; Enter may. A heuristic
// is cloned before a child is entered, then Enter is called on the clone.
type Heuristic[C Choice] interface {
	// Enter is called with the child position just descended into.
	Enter(choice C)
	// Choices returns the child positions to attempt at the current node.
	Choices() Choices[C]
	// Clone returns an independent copy of the heuristic.
	Clone() Heuristic[C]
}

// Choices is a resumable sequence of child positions.
type Choices[C Choice] interface {
	Next() (C, bool)
}

var (
	bools  = []bool{false, true}
	groups = []Group{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
)

// domain returns all choices of type C in base order.
func domain[C Choice]() []C {
	var zero C
	switch any(zero).(type) {
	case bool:
		return any(bools).([]C)
	case Group:
		return any(groups).([]C)
	}
	panic("heuristic: unknown choice type")
}

// distance is the number of differing bits between a and b.
func distance[C Choice](a, b C) int {
	switch x := any(a).(type) {
	case bool:
		if x != any(b).(bool) {
			return 1
		}
		return 0
	case Group:
		return bits.OnesCount8(uint8(x ^ any(b).(Group)))
	}
	panic("heuristic: unknown choice type")
}

// xor flips the bits of c set in d.
func xor[C Choice](c, d C) C {
	switch x := any(c).(type) {
	case bool:
		return any(x != any(d).(bool)).(C)
	case Group:
		return any((x ^ any(d).(Group)) & (GroupCount - 1)).(C)
	}
	panic("heuristic: unknown choice type")
}

// sliceChoices iterates over a fixed list of choices.
type sliceChoices[C Choice] struct {
	choices []C
	next    int
}

func (it *sliceChoices[C]) Next() (C, bool) {
	if it.next >= len(it.choices) {
		var zero C
		return zero, false
	}
	c := it.choices[it.next]
	it.next++
	return c, true
}

// Slice returns a stateless heuristic which attempts the given choices, in
// the given order, at every node. Choices are not validated here.
func Slice[C Choice](choices ...C) Heuristic[C] {
	return fixed[C]{choices: choices}
}

type fixed[C Choice] struct {
	choices []C
}

func (f fixed[C]) Enter(C) {}

func (f fixed[C]) Choices() Choices[C] {
	return &sliceChoices[C]{choices: f.choices}
}

func (f fixed[C]) Clone() Heuristic[C] {
	return f
}

// All returns a heuristic visiting every child in base order. Exploring with
// All is equivalent to plain enumeration.
func All[C Choice]() Heuristic[C] {
	return fixed[C]{choices: domain[C]()}
}
