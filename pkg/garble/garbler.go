package garble

// Garbler is a perturbation strategy: one method per leaf type, each
// taking and returning a value of that type.
//
// Methods must be total. A strategy that cannot or chooses not to
// perturb a value returns it unchanged; integer perturbation must use
// wrapping semantics so that no input can overflow into a panic.
//
// Strategies may carry internal state (an RNG, a counter, a call log).
// Within one call to Value the strategy's methods are invoked in the
// deterministic traversal order documented in the package comment,
// which makes seeded strategies reproducible.
//
// GarbleRune is not reached by the structural walker for bare rune
// values — rune is an alias of int32, so those arrive at GarbleInt32.
// It exists for string-content perturbation and for direct calls.
type Garbler interface {
	GarbleBool(v bool) bool
	GarbleRune(v rune) rune

	GarbleUint8(v uint8) uint8
	GarbleUint16(v uint16) uint16
	GarbleUint32(v uint32) uint32
	GarbleUint64(v uint64) uint64
	GarbleUint(v uint) uint

	GarbleInt8(v int8) int8
	GarbleInt16(v int16) int16
	GarbleInt32(v int32) int32
	GarbleInt64(v int64) int64
	GarbleInt(v int) int

	GarbleFloat32(v float32) float32
	GarbleFloat64(v float64) float64

	GarbleString(v string) string
}
