package garble

// Heap is a priority queue over a caller-supplied ordering. Garbling
// perturbs every element and re-establishes heap order under the same
// ordering; like sets, it keeps element count (elements that compare
// equal still occupy separate slots).
type Heap[T any] struct {
	less  func(a, b T) bool
	items []T
}

// NewHeap builds a heap with the given ordering and initial items.
func NewHeap[T any](less func(a, b T) bool, items ...T) *Heap[T] {
	h := &Heap[T]{less: less, items: make([]T, len(items))}
	copy(h.items, items)
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h
}

// Push inserts v.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the minimum element under the heap's
// ordering.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return top, true
}

// Peek returns the minimum element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		if l := 2*i + 1; l < n && h.less(h.items[l], h.items[smallest]) {
			smallest = l
		}
		if r := 2*i + 2; r < n && h.less(h.items[r], h.items[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

func (h *Heap[T]) garbleSelf(g Garbler) any {
	if h == nil {
		return h
	}
	garbled := make([]T, len(h.items))
	for i, v := range h.items {
		garbled[i] = Value(v, g)
	}
	return NewHeap(h.less, garbled...)
}
