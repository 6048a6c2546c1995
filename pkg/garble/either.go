package garble

// Either holds exactly one of two values. Garbling recurses into the
// inhabited side and preserves which side is inhabited.
//
// The zero Either is a Left holding the zero L.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left builds an Either inhabited on the left.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right builds an Either inhabited on the right.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{isRight: true, right: v}
}

// IsLeft reports whether the left side is inhabited.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// LeftValue returns the left value and whether it is inhabited.
func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

// RightValue returns the right value and whether it is inhabited.
func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) garbleSelf(g Garbler) any {
	if e.isRight {
		e.right = Value(e.right, g)
	} else {
		e.left = Value(e.left, g)
	}
	return e
}
