package garble

// Set is a hashed set. Garbling perturbs every element and collects
// the results into a fresh set; garbled elements may collide, so the
// output cardinality can be smaller than the input's.
type Set[T comparable] map[T]struct{}

// NewSet builds a set holding the given items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, v := range items {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Items returns the elements in unspecified order.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

func (s Set[T]) garbleSelf(g Garbler) any {
	if s == nil {
		return s
	}
	out := make(Set[T], len(s))
	for v := range s {
		out[Value(v, g)] = struct{}{}
	}
	return out
}
