package heuristic

// Radius returns a heuristic for Hamming-radius searches. It tracks, per
// branch, how many key bits along the path differ from target and visits only
// children which keep that count at or below maxDist. Children are visited in
// order of increasing XOR distance from target(d).
//
// Leaves hold no key bits below their own depth, so an item found at a
// shallow leaf is reported even if its deeper bits would exceed the radius.
// Callers needing exact distances re-check the items they receive.
func Radius[C Choice](target func(depth uint32) C, maxDist int) Heuristic[C] {
	return &radius[C]{target: target, maxDist: maxDist}
}

type radius[C Choice] struct {
	target  func(uint32) C
	maxDist int
	depth   uint32
	dist    int // accumulated bit distance on the path so far
}

func (r *radius[C]) Enter(choice C) {
	r.dist += distance(choice, r.target(r.depth))
	r.depth++
}

func (r *radius[C]) Choices() Choices[C] {
	return &radiusChoices[C]{
		target: r.target(r.depth),
		budget: r.maxDist - r.dist,
		deltas: domain[C](),
	}
}

func (r *radius[C]) Clone() Heuristic[C] {
	c := *r
	return &c
}

type radiusChoices[C Choice] struct {
	target C
	budget int
	deltas []C
	next   int
}

func (it *radiusChoices[C]) Next() (C, bool) {
	for it.next < len(it.deltas) {
		delta := it.deltas[it.next]
		it.next++
		c := xor(it.target, delta)
		if distance(c, it.target) <= it.budget {
			return c, true
		}
	}
	var zero C
	return zero, false
}
