package heuristic

// Search returns a best-first heuristic for binary tries. At every node the
// preferred side is visited first, then the other one. At the root false is
// preferred; after entering a side, prefer(side) tells which side to prefer
// one level below.
//
// Both sides are always visited eventually, so Search orders but never
// prunes. How close the first results are to a query depends on the bit
// level at which query and stored keys first differ.
func Search(prefer func(entered bool) bool) Heuristic[bool] {
	return SearchFrom(false, prefer)
}

// SearchFrom is like Search, with the preference at the root given by first.
func SearchFrom(first bool, prefer func(entered bool) bool) Heuristic[bool] {
	return &search{prefer: prefer, next: first}
}

type search struct {
	prefer func(bool) bool
	next   bool
}

func (s *search) Enter(side bool) {
	s.next = s.prefer(side)
}

func (s *search) Choices() Choices[bool] {
	return &searchChoices{first: s.next}
}

func (s *search) Clone() Heuristic[bool] {
	c := *s
	return &c
}

type searchChoices struct {
	first bool
	n     int
}

func (it *searchChoices) Next() (bool, bool) {
	switch it.n {
	case 0:
		it.n++
		return it.first, true
	case 1:
		it.n++
		return !it.first, true
	}
	return false, false
}
