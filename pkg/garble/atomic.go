package garble

import (
	"reflect"
	"sync/atomic"
)

var (
	atomicBoolType   = reflect.TypeOf((*atomic.Bool)(nil)).Elem()
	atomicInt32Type  = reflect.TypeOf((*atomic.Int32)(nil)).Elem()
	atomicInt64Type  = reflect.TypeOf((*atomic.Int64)(nil)).Elem()
	atomicUint32Type = reflect.TypeOf((*atomic.Uint32)(nil)).Elem()
	atomicUint64Type = reflect.TypeOf((*atomic.Uint64)(nil)).Elem()
)

// garbleAtomic handles the sync/atomic wrapper types: the current
// value is loaded, garbled through the matching leaf, and stored into
// the walker's fresh copy. The value reaching here is uniquely owned
// by the walker, so the load/store pair needs no further ordering.
func garbleAtomic(v reflect.Value, g Garbler) (reflect.Value, bool) {
	switch v.Type() {
	case atomicBoolType, atomicInt32Type, atomicInt64Type, atomicUint32Type, atomicUint64Type:
	default:
		return reflect.Value{}, false
	}
	if !v.CanAddr() {
		// Read-only slot; leave it alone rather than copy a lock.
		return v, true
	}
	switch p := v.Addr().Interface().(type) {
	case *atomic.Bool:
		p.Store(g.GarbleBool(p.Load()))
	case *atomic.Int32:
		p.Store(g.GarbleInt32(p.Load()))
	case *atomic.Int64:
		p.Store(g.GarbleInt64(p.Load()))
	case *atomic.Uint32:
		p.Store(g.GarbleUint32(p.Load()))
	case *atomic.Uint64:
		p.Store(g.GarbleUint64(p.Load()))
	}
	return v, true
}
