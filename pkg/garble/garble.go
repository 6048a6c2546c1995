package garble

import (
	"reflect"
)

// Value garbles v with the strategy g and returns the result.
//
// Leaves dispatch to the matching Garbler method; composites recurse
// per the structural rules in the package comment. The input is not
// mutated: pointers, slices and maps in the result are freshly
// allocated.
func Value[T any](v T, g Garbler) T {
	rv := reflect.ValueOf(&v).Elem()
	if out, ok := garbleValue(rv, g).Interface().(T); ok {
		return out
	}
	// A custom Garble implementation broke its type contract; keep
	// the input rather than fabricate a zero value.
	return v
}

// selfGarbler is the hook implemented by the container and wrapper
// types shipped with this package. The returned value must have the
// receiver's type.
type selfGarbler interface {
	garbleSelf(g Garbler) any
}

var (
	selfGarblerType = reflect.TypeOf((*selfGarbler)(nil)).Elem()
	garblerType     = reflect.TypeOf((*Garbler)(nil)).Elem()
)

// garbleValue returns a garbled value of the same type as v. v is
// always an addressable copy owned by the walker, so mutating it in
// place is allowed.
func garbleValue(v reflect.Value, g Garbler) reflect.Value {
	if !v.IsValid() {
		return v
	}

	if out, ok := selfGarble(v, g); ok {
		return out
	}
	if out, ok := customGarble(v, g); ok {
		return out
	}
	if out, ok := garbleAtomic(v, g); ok {
		return out
	}
	if out, ok := garbleNetip(v, g); ok {
		return out
	}

	switch v.Kind() {
	case reflect.Bool:
		v.SetBool(g.GarbleBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		garbleLeaf(v, g)
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		if v.Kind() == reflect.Complex64 {
			re := g.GarbleFloat32(float32(real(c)))
			im := g.GarbleFloat32(float32(imag(c)))
			v.SetComplex(complex(float64(re), float64(im)))
		} else {
			v.SetComplex(complex(g.GarbleFloat64(real(c)), g.GarbleFloat64(imag(c))))
		}
	case reflect.String:
		v.SetString(g.GarbleString(v.String()))
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		np := reflect.New(v.Type().Elem())
		np.Elem().Set(v.Elem())
		np.Elem().Set(garbleValue(np.Elem(), g))
		return np.Convert(v.Type())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			v.Index(i).Set(garbleValue(v.Index(i), g))
		}
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(out, v)
		for i := 0; i < out.Len(); i++ {
			out.Index(i).Set(garbleValue(out.Index(i), g))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			k := garbleValue(addressableCopy(iter.Key()), g)
			e := garbleValue(addressableCopy(iter.Value()), g)
			out.SetMapIndex(k, e)
		}
		return out
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get("garble") == "-" {
				continue
			}
			v.Field(i).Set(garbleValue(v.Field(i), g))
		}
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		dyn := garbleValue(addressableCopy(v.Elem()), g)
		out := reflect.New(v.Type()).Elem()
		out.Set(dyn)
		return out
	default:
		// Chan, Func, UnsafePointer, Uintptr: nothing meaningful to
		// perturb; pass through.
	}
	return v
}

// garbleLeaf dispatches a numeric leaf to the matching Garbler method
// and writes the result back into v. Named types keep their type: the
// dispatch goes by kind and the result is set through reflection.
func garbleLeaf(v reflect.Value, g Garbler) {
	switch v.Kind() {
	case reflect.Int:
		v.SetInt(int64(g.GarbleInt(int(v.Int()))))
	case reflect.Int8:
		v.SetInt(int64(g.GarbleInt8(int8(v.Int()))))
	case reflect.Int16:
		v.SetInt(int64(g.GarbleInt16(int16(v.Int()))))
	case reflect.Int32:
		v.SetInt(int64(g.GarbleInt32(int32(v.Int()))))
	case reflect.Int64:
		v.SetInt(g.GarbleInt64(v.Int()))
	case reflect.Uint:
		v.SetUint(uint64(g.GarbleUint(uint(v.Uint()))))
	case reflect.Uint8:
		v.SetUint(uint64(g.GarbleUint8(uint8(v.Uint()))))
	case reflect.Uint16:
		v.SetUint(uint64(g.GarbleUint16(uint16(v.Uint()))))
	case reflect.Uint32:
		v.SetUint(uint64(g.GarbleUint32(uint32(v.Uint()))))
	case reflect.Uint64:
		v.SetUint(g.GarbleUint64(v.Uint()))
	case reflect.Float32:
		v.SetFloat(float64(g.GarbleFloat32(float32(v.Float()))))
	case reflect.Float64:
		v.SetFloat(g.GarbleFloat64(v.Float()))
	}
}

// selfGarble dispatches to the garbleSelf hook of the container and
// wrapper types shipped with this package. Pointer shape is preserved:
// a nil pointer passes through, and a non-nil pointer to a
// value-receiver implementor is left for the pointer rule, which
// clones it and dispatches on the element.
func selfGarble(v reflect.Value, g Garbler) (reflect.Value, bool) {
	t := v.Type()
	if !t.Implements(selfGarblerType) {
		return reflect.Value{}, false
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return v, true
		}
		if t.Elem().Implements(selfGarblerType) {
			return reflect.Value{}, false
		}
	}
	return reflect.ValueOf(v.Interface().(selfGarbler).garbleSelf(g)), true
}

// customGarble dispatches to a hand-written or generated
// Garble(Garbler) T method, if v's type has one with a value receiver.
func customGarble(v reflect.Value, g Garbler) (reflect.Value, bool) {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return reflect.Value{}, false
	}
	m := v.MethodByName("Garble")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.In(0) != garblerType || mt.Out(0) != v.Type() {
		return reflect.Value{}, false
	}
	return m.Call([]reflect.Value{reflect.ValueOf(g)})[0], true
}

// addressableCopy returns a settable copy of v. Map keys and interface
// elements are read-only; the walker needs addressable values so that
// atomic fields inside them can be handled in place.
func addressableCopy(v reflect.Value) reflect.Value {
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}
