// Package garble perturbs typed values for fault-injection testing.
//
// Garbling takes a value and returns a value of the same type and shape
// in which leaf fields (booleans, integers, floats, strings, address
// types) have been perturbed by a pluggable strategy. It is meant for
// test authors who want to stress code paths that handle corrupted or
// unexpected input — serializers, validators, protocol parsers, fuzz
// targets — without hand-writing malformed fixtures per type.
//
// # Usage
//
// Create a garbler and run values through it:
//
//	import "github.com/hsiuhsiu/garble-go/pkg/garble"
//
//	// Garbler with a 50% probability of perturbing each leaf.
//	g := garble.NewSimpleGarbler(0.5)
//
//	fmt.Println(garble.Value(true, g))
//	fmt.Println(garble.Value(uint64(128), g))
//	fmt.Println(garble.Value(float32(3.5), g))
//
// Structs are garbled field by field. Mark a field with the struct tag
// garble:"-" to pass it through untouched:
//
//	type Packet struct {
//	    Seq     uint32
//	    Payload []byte
//	    CRC     uint32 `garble:"-"`
//	}
//
//	corrupted := garble.Value(pkt, g)
//
// # Structural rules
//
// garble.Value recurses through composite types and preserves their
// shape:
//
//   - *T: nil stays nil; otherwise a fresh pointer to a garbled copy
//   - slices and arrays: per element, length preserved
//   - maps: keys and values garbled; garbled keys may collide, so the
//     result may hold fewer entries than the input
//   - structs: exported fields in declaration order; unexported fields
//     and fields tagged garble:"-" are carried over verbatim
//   - interfaces: the dynamic value is garbled, the dynamic type kept
//   - netip.Addr and netip.AddrPort: address bytes and port garbled,
//     zone preserved
//   - sync/atomic integer and bool types: loaded, garbled, stored into
//     a fresh atomic
//
// Channels, funcs, unsafe pointers and uintptrs are returned unchanged:
// every operation in this package is total and the library never
// panics on a value it does not understand.
//
// Cyclic values are not supported; the recursion assumes tree-shaped
// data. Break back-edges with NoGarble.
//
// # Custom garbling
//
// A type that defines
//
//	func (v T) Garble(g garble.Garbler) T
//
// with a value receiver is garbled by that method instead of the
// structural rules. Such methods can be written by hand or generated
// ahead of time with cmd/garblegen; generated methods also reach
// unexported fields, which reflection cannot.
//
// # Strategies
//
// A strategy implements the Garbler interface: one method per leaf
// type, each total. SimpleGarbler is the strategy shipped with the
// package; it perturbs each leaf with a configurable probability and
// can be seeded for reproducible runs. Within one call to Value the
// same strategy instance sees every leaf in a deterministic traversal
// order, so a seeded strategy yields identical output for identical
// input. The one exception is map (and Set) iteration, whose order Go
// leaves unspecified; values containing maps garble reproducibly only
// entry-by-entry, not across the whole map.
//
// A Garbler is borrowed for the duration of one Value call. Garbling
// concurrently with the same strategy instance requires external
// synchronization; distinct instances are independent.
package garble
