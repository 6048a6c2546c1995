package garble

import (
	"math/rand/v2"
	"unicode/utf8"
)

// SimpleGarbler is the strategy shipped with the package. Each leaf is
// perturbed with probability rate; a perturbed leaf is redrawn at
// random from its type, with a deterministic nudge when the redraw
// lands on the input value:
//
//   - bool: logical NOT
//   - integers: redraw of the same width; if equal, input+1 (wrapping)
//   - floats: redraw; if equal, input squared
//   - runes: redraw; if equal, the next scalar, falling back to 'g'
//   - strings: per rune, with probability rate, replace with a random
//     scalar
type SimpleGarbler struct {
	rate float64
	rng  *rand.Rand
}

// NewSimpleGarbler returns a garbler perturbing each leaf with the
// given probability. Rates outside [0, 1] are clamped. The garbler is
// seeded from the process-wide source; use NewSeededSimpleGarbler for
// reproducible runs.
func NewSimpleGarbler(rate float64) *SimpleGarbler {
	return NewSeededSimpleGarbler(rate, rand.Uint64())
}

// NewSeededSimpleGarbler returns a garbler with a deterministic RNG.
// Two garblers with the same rate and seed produce identical output
// for identical input.
func NewSeededSimpleGarbler(rate float64, seed uint64) *SimpleGarbler {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return &SimpleGarbler{
		rate: rate,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Rate returns the per-leaf perturbation probability after clamping.
func (s *SimpleGarbler) Rate() float64 {
	return s.rate
}

func (s *SimpleGarbler) hit() bool {
	if s.rate <= 0 {
		return false
	}
	if s.rate >= 1 {
		return true
	}
	return s.rng.Float64() < s.rate
}

func (s *SimpleGarbler) randRune() rune {
	for {
		r := rune(s.rng.IntN(utf8.MaxRune + 1))
		if utf8.ValidRune(r) {
			return r
		}
	}
}

func (s *SimpleGarbler) GarbleBool(v bool) bool {
	return s.hit() != v
}

func (s *SimpleGarbler) GarbleRune(v rune) rune {
	if !s.hit() {
		return v
	}
	if r := s.randRune(); r != v {
		return r
	}
	return nextRune(v)
}

// nextRune returns the scalar after v, or 'g' when v+1 is not a valid
// scalar (the surrogate gap and the end of the range).
func nextRune(v rune) rune {
	if next := v + 1; utf8.ValidRune(next) {
		return next
	}
	return 'g'
}

func (s *SimpleGarbler) GarbleUint8(v uint8) uint8 {
	if !s.hit() {
		return v
	}
	if r := uint8(s.rng.Uint64()); r != v {
		return r
	}
	return v + 1
}

func (s *SimpleGarbler) GarbleUint16(v uint16) uint16 {
	if !s.hit() {
		return v
	}
	if r := uint16(s.rng.Uint64()); r != v {
		return r
	}
	return v + 1
}

func (s *SimpleGarbler) GarbleUint32(v uint32) uint32 {
	if !s.hit() {
		return v
	}
	if r := uint32(s.rng.Uint64()); r != v {
		return r
	}
	return v + 1
}

func (s *SimpleGarbler) GarbleUint64(v uint64) uint64 {
	if !s.hit() {
		return v
	}
	if r := s.rng.Uint64(); r != v {
		return r
	}
	return v + 1
}

func (s *SimpleGarbler) GarbleUint(v uint) uint {
	if !s.hit() {
		return v
	}
	if r := uint(s.rng.Uint64()); r != v {
		return r
	}
	return v + 1
}

func (s *SimpleGarbler) GarbleInt8(v int8) int8 {
	if !s.hit() {
		return v
	}
	if r := int8(s.rng.Uint64()); r != v {
		return r
	}
	return v + 1
}

func (s *SimpleGarbler) GarbleInt16(v int16) int16 {
	if !s.hit() {
		return v
	}
	if r := int16(s.rng.Uint64()); r != v {
		return r
	}
	return v + 1
}

func (s *SimpleGarbler) GarbleInt32(v int32) int32 {
	if !s.hit() {
		return v
	}
	if r := int32(s.rng.Uint64()); r != v {
		return r
	}
	return v + 1
}

func (s *SimpleGarbler) GarbleInt64(v int64) int64 {
	if !s.hit() {
		return v
	}
	if r := int64(s.rng.Uint64()); r != v {
		return r
	}
	return v + 1
}

func (s *SimpleGarbler) GarbleInt(v int) int {
	if !s.hit() {
		return v
	}
	if r := int(s.rng.Uint64()); r != v {
		return r
	}
	return v + 1
}

func (s *SimpleGarbler) GarbleFloat32(v float32) float32 {
	if !s.hit() {
		return v
	}
	if r := s.rng.Float32(); r != v {
		return r
	}
	return v * v
}

func (s *SimpleGarbler) GarbleFloat64(v float64) float64 {
	if !s.hit() {
		return v
	}
	if r := s.rng.Float64(); r != v {
		return r
	}
	return v * v
}

func (s *SimpleGarbler) GarbleString(v string) string {
	out := make([]rune, 0, len(v))
	for _, c := range v {
		if s.hit() {
			out = append(out, s.randRune())
		} else {
			out = append(out, c)
		}
	}
	return string(out)
}

var _ Garbler = (*SimpleGarbler)(nil)
