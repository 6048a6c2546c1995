package garble

// Deque is a double-ended queue. Garbling perturbs the elements
// front to back and preserves order and length.
type Deque[T any] struct {
	items []T
}

// NewDeque builds a deque holding the given items, front first.
func NewDeque[T any](items ...T) Deque[T] {
	d := Deque[T]{items: make([]T, len(items))}
	copy(d.items, items)
	return d
}

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	d.items = append(d.items, v)
}

// PushFront inserts v at the front.
func (d *Deque[T]) PushFront(v T) {
	d.items = append(d.items, v)
	copy(d.items[1:], d.items)
	d.items[0] = v
}

// PopFront removes and returns the front element.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	v := d.items[0]
	d.items[0] = zero
	d.items = d.items[1:]
	return v, true
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	v := d.items[len(d.items)-1]
	d.items[len(d.items)-1] = zero
	d.items = d.items[:len(d.items)-1]
	return v, true
}

// At returns the element at index i, front being 0.
func (d Deque[T]) At(i int) T {
	return d.items[i]
}

// Len returns the number of elements.
func (d Deque[T]) Len() int {
	return len(d.items)
}

func (d Deque[T]) garbleSelf(g Garbler) any {
	out := Deque[T]{items: make([]T, len(d.items))}
	for i, v := range d.items {
		out.items[i] = Value(v, g)
	}
	return out
}
