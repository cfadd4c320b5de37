package nbt

import "math"

// Equal reports structural equality of two values. Compound entry order
// is ignored (it only matters for byte-identical output); list order is
// significant. Floats compare by bit pattern, so NaN payloads round-trip
// as equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Tag() != b.Tag() {
		return false
	}
	switch x := a.(type) {
	case Byte, Short, Int, Long, String:
		return a == b
	case Float:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		y := b.(ByteArray)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	case IntArray:
		y := b.(IntArray)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	case LongArray:
		y := b.(LongArray)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	case *List:
		y := b.(*List)
		if x.Len() != y.Len() {
			return false
		}
		// Two empty lists are equal regardless of declared element type.
		if x.Len() > 0 && x.elem != y.elem {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	case *Compound:
		y := b.(*Compound)
		if x.Len() != y.Len() {
			return false
		}
		for name, v := range x.index {
			w, ok := y.index[name]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal reports whether two named tags have the same name and
// structurally equal values.
func (t NamedTag) Equal(u NamedTag) bool {
	return t.Name == u.Name && Equal(t.Value, u.Value)
}
