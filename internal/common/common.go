package common

import (
	"reflect"
	"unsafe"
)

// PtrSize is the width of a pointer and of uintptr on the build target.
const PtrSize = 4 << (^uintptr(0) >> 63)

// Scalar describes one element type admitted by the layout rules.
type Scalar struct {
	Name  string // Go spelling
	CType string // C spelling used in generated headers
	Kind  reflect.Kind
}

// Scalars is the fixed set of scalar element types, in the order the
// generated constraint lists them.
var Scalars = []Scalar{
	{Name: "bool", CType: "bool", Kind: reflect.Bool},
	{Name: "int8", CType: "int8_t", Kind: reflect.Int8},
	{Name: "int16", CType: "int16_t", Kind: reflect.Int16},
	{Name: "int32", CType: "int32_t", Kind: reflect.Int32},
	{Name: "int64", CType: "int64_t", Kind: reflect.Int64},
	{Name: "int", CType: "intptr_t", Kind: reflect.Int},
	{Name: "uint8", CType: "uint8_t", Kind: reflect.Uint8},
	{Name: "uint16", CType: "uint16_t", Kind: reflect.Uint16},
	{Name: "uint32", CType: "uint32_t", Kind: reflect.Uint32},
	{Name: "uint64", CType: "uint64_t", Kind: reflect.Uint64},
	{Name: "uint", CType: "uintptr_t", Kind: reflect.Uint},
	{Name: "uintptr", CType: "uintptr_t", Kind: reflect.Uintptr},
	{Name: "float32", CType: "float", Kind: reflect.Float32},
	{Name: "float64", CType: "double", Kind: reflect.Float64},
	{Name: "complex64", CType: "float _Complex", Kind: reflect.Complex64},
	{Name: "complex128", CType: "double _Complex", Kind: reflect.Complex128},
}

// ArrayLengths are the array lengths admitted at compile time, one term per
// scalar each. The type checker caps a flattened union at 100 terms, so
// longer and nested arrays are left to the runtime classifier.
var ArrayLengths = []int{1, 2, 3, 4}

// LookupScalar finds a scalar by its Go name. byte and rune are accepted as
// the aliases they are.
func LookupScalar(name string) (Scalar, bool) {
	switch name {
	case "byte":
		name = "uint8"
	case "rune":
		name = "int32"
	}
	for _, s := range Scalars {
		if s.Name == name {
			return s, true
		}
	}
	return Scalar{}, false
}

// IsScalarKind reports whether k is a scalar kind with a platform-defined layout.
func IsScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// ScalarSize returns the byte width for scalar kinds.
func ScalarSize(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64, reflect.Complex64:
		return 8
	case reflect.Complex128:
		return 16
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return PtrSize
	default:
		return -1
	}
}

// Alignment returns the natural alignment of a scalar kind on the build
// target. 64-bit values are only 4-byte aligned on 32-bit targets.
func Alignment(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64:
		return int(unsafe.Alignof(uint64(0)))
	case reflect.Float64:
		return int(unsafe.Alignof(float64(0)))
	case reflect.Complex64:
		return int(unsafe.Alignof(complex64(0)))
	case reflect.Complex128:
		return int(unsafe.Alignof(complex128(0)))
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return PtrSize
	default:
		return 1
	}
}

// MaxScalarAlign is the strictest alignment among the scalar kinds.
func MaxScalarAlign() int {
	m := 1
	for _, s := range Scalars {
		if a := Alignment(s.Kind); a > m {
			m = a
		}
	}
	return m
}
