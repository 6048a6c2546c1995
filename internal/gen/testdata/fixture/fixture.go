// Package fixture holds types for generator tests.
package fixture

import "sync/atomic"

// Record mixes garbled, exempt and unexported fields.
type Record struct {
	A    uint32
	B    string `garble:"-"`
	seen uint8
}

// Pair is a plain positional aggregate.
type Pair struct {
	X uint32
	Y uint32 `garble:"-"`
}

// Box is generic and must be rejected by the generator.
type Box[T any] struct {
	V T
}

// Count is not a struct and must be rejected by the generator.
type Count int

// Gauge holds an atomic field and must be rejected by the generator.
type Gauge struct {
	Name string
	Hits atomic.Uint64
}
