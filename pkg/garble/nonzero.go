package garble

import (
	"errors"
	"reflect"
)

// Integer is the constraint satisfied by the built-in integer types
// and types defined on them.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ErrZero is returned by NewNonZero for a zero payload.
var ErrZero = errors.New("garble: zero value for NonZero")

// NonZero holds an integer that is never zero. Garbling perturbs the
// payload through the matching integer leaf; if the perturbed value
// would be zero it rebinds to one, keeping the invariant.
type NonZero[T Integer] struct {
	val T
}

// NewNonZero wraps v, rejecting zero.
func NewNonZero[T Integer](v T) (NonZero[T], error) {
	if v == 0 {
		return NonZero[T]{}, ErrZero
	}
	return NonZero[T]{val: v}, nil
}

// Get returns the wrapped value. It is never zero.
func (n NonZero[T]) Get() T {
	return n.val
}

func (n NonZero[T]) garbleSelf(g Garbler) any {
	rv := reflect.ValueOf(&n.val).Elem()
	garbleLeaf(rv, g)
	if n.val == 0 {
		n.val = 1
	}
	return n
}
