package flatabi

//go:generate go run ./cmd/flatgen types -o layout_arrays.go

import "unsafe"

// Scalar admits the primitive element types whose size and alignment are
// fixed by the platform ABI rather than by the compiler version. A defined
// type inherits admissibility from its underlying type, which covers
// transparent wrappers such as `type Celsius float64`.
//
// byte and rune are aliases of uint8 and int32. struct{} is the zero-sized
// marker.
type Scalar interface {
	~bool |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128 |
		~struct{}
}

// Pointer admits address-sized references to scalar pointees. Go pointers
// are nullable, so the optional form is the same type.
type Pointer interface {
	~*bool |
		~*int8 | ~*int16 | ~*int32 | ~*int64 | ~*int |
		~*uint8 | ~*uint16 | ~*uint32 | ~*uint64 | ~*uint | ~*uintptr |
		~*float32 | ~*float64 |
		~*complex64 | ~*complex128 |
		~unsafe.Pointer
}

// PointerFree admits element types that hold no Go pointers and may
// therefore live in memory the garbage collector does not scan.
type PointerFree interface {
	Scalar | Array
}

// Layout is the layout-stability capability: the element types that may be
// embedded in a flat record. Every record in this package is constrained by
// it, so using any other element type fails to compile.
//
// Type sets cannot recurse, so nested arrays, pointers to arrays and
// host-layout structs are classified at run time by package layoutcheck.
type Layout interface {
	Scalar | Array | Pointer
}
