package garble

// List is a doubly-linked list. Garbling rebuilds a fresh list with
// every element perturbed, front to back, preserving order and length.
type List[T any] struct {
	head, tail *listNode[T]
	size       int
}

type listNode[T any] struct {
	val        T
	prev, next *listNode[T]
}

// NewList builds a list holding the given items, front first.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	for _, v := range items {
		l.PushBack(v)
	}
	return l
}

// PushBack appends v at the back.
func (l *List[T]) PushBack(v T) {
	n := &listNode[T]{val: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PushFront inserts v at the front.
func (l *List[T]) PushFront(v T) {
	n := &listNode[T]{val: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// Front returns the first element.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.val, true
}

// Back returns the last element.
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.val, true
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Values returns the elements front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

func (l *List[T]) garbleSelf(g Garbler) any {
	if l == nil {
		return l
	}
	out := &List[T]{}
	for n := l.head; n != nil; n = n.next {
		out.PushBack(Value(n.val, g))
	}
	return out
}
