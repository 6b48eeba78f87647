package heuristic

// Filter returns a heuristic which visits children in base order, but only
// those accepted by accept. This is useful for bounded searches, e.g. to
// explore only slots matching a bit pattern.
//
// accept is shared between all clones and should therefore be free of side
// effects. Stateful filtering belongs into FilterWith or a custom Heuristic.
func Filter[C Choice](accept func(C) bool) Heuristic[C] {
	return filter[C]{accept: accept}
}

type filter[C Choice] struct {
	accept func(C) bool
}

func (f filter[C]) Enter(C) {}

func (f filter[C]) Choices() Choices[C] {
	return &filterChoices[C]{
		accept: f.accept,
		domain: domain[C](),
	}
}

func (f filter[C]) Clone() Heuristic[C] {
	return f
}

type filterChoices[C Choice] struct {
	accept func(C) bool
	domain []C
	next   int
}

// Next calls accept lazily, one candidate at a time.
func (it *filterChoices[C]) Next() (C, bool) {
	for it.next < len(it.domain) {
		c := it.domain[it.next]
		it.next++
		if it.accept(c) {
			return c, true
		}
	}
	var zero C
	return zero, false
}

// FilterWith is a Filter which carries state down each branch. state is the
// value at the root. When a child is entered, enter derives the child's state
// from the parent's; accept decides on candidate choices given the state of
// the current node. S is copied per branch, so it should be a value type.
func FilterWith[C Choice, S any](state S, enter func(S, C) S, accept func(S, C) bool) Heuristic[C] {
	return &statefulFilter[C, S]{state: state, enter: enter, accept: accept}
}

type statefulFilter[C Choice, S any] struct {
	state  S
	enter  func(S, C) S
	accept func(S, C) bool
}

func (f *statefulFilter[C, S]) Enter(choice C) {
	f.state = f.enter(f.state, choice)
}

func (f *statefulFilter[C, S]) Choices() Choices[C] {
	state, accept := f.state, f.accept
	return &filterChoices[C]{
		accept: func(c C) bool { return accept(state, c) },
		domain: domain[C](),
	}
}

func (f *statefulFilter[C, S]) Clone() Heuristic[C] {
	c := *f
	return &c
}
