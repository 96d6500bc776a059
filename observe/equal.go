package observe

import "reflect"

type unset struct{}

func (unset) String() string { return "<unset>" }

// Unset is the declared initial value that marks an attribute as observed.
// It is also what an observed field holds until something is stored in it.
var Unset = unset{}

// IsUnset reports whether v is the Unset sentinel.
func IsUnset(v any) bool {
	_, ok := v.(unset)
	return ok
}

// EqualFunc compares two stored values for equality.
type EqualFunc func(a, b any) bool

// Equal compares by value. Numbers compare by numeric value across kinds, so
// 1, int64(1) and 1.0 are equal. Everything else uses reflect.DeepEqual:
// pointers are followed and slices and maps compare element-wise.
func Equal(a, b any) bool {
	if eq, ok := numericEqual(a, b); ok {
		return eq
	}
	return reflect.DeepEqual(a, b)
}

type numClass int

const (
	notNumber numClass = iota
	signedInt
	unsignedInt
	floating
)

func classify(v reflect.Value) numClass {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedInt
	case reflect.Float32, reflect.Float64:
		return floating
	}
	return notNumber
}

func numericEqual(a, b any) (equal, ok bool) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ca, cb := classify(va), classify(vb)
	if ca == notNumber || cb == notNumber {
		return false, false
	}
	switch {
	case ca == floating || cb == floating:
		return asFloat(va, ca) == asFloat(vb, cb), true
	case ca == signedInt && cb == signedInt:
		return va.Int() == vb.Int(), true
	case ca == unsignedInt && cb == unsignedInt:
		return va.Uint() == vb.Uint(), true
	case ca == signedInt:
		return va.Int() >= 0 && uint64(va.Int()) == vb.Uint(), true
	default:
		return vb.Int() >= 0 && uint64(vb.Int()) == va.Uint(), true
	}
}

func asFloat(v reflect.Value, c numClass) float64 {
	switch c {
	case signedInt:
		return float64(v.Int())
	case unsignedInt:
		return float64(v.Uint())
	}
	return v.Float()
}
