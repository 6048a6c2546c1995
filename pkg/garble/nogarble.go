package garble

// NoGarble is a transparent envelope whose garbling is the identity.
// Wrap a sub-value in it to exclude the sub-value from perturbation;
// the strategy is never consulted. Because garbling it is trivially
// defined, it can wrap any type, including ones the walker would pass
// through or a strategy could not handle.
type NoGarble[T any] struct {
	val T
}

// NewNoGarble wraps v in a NoGarble envelope.
func NewNoGarble[T any](v T) NoGarble[T] {
	return NoGarble[T]{val: v}
}

// Get returns the wrapped value.
func (n NoGarble[T]) Get() T {
	return n.val
}

func (n NoGarble[T]) garbleSelf(Garbler) any {
	return n
}
