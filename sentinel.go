package flatabi

import "unsafe"

var emptyBase struct {
	_ [0]complex128
	_ [0]uint64
	_ [0]uintptr
	_ [8]byte
}

// MaxAlign is the strictest alignment among the admissible element types.
const MaxAlign = unsafe.Alignof(emptyBase)

// Dangling returns the sentinel address used by empty records. It is
// non-nil, aligned to MaxAlign and never dereferenced.
func Dangling() unsafe.Pointer {
	return unsafe.Pointer(&emptyBase)
}

// viewBase returns the address a borrowed view stores for s.
func viewBase[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return Dangling()
	}
	return unsafe.Pointer(unsafe.SliceData(s))
}

// bufBase returns the address an owning record stores for s. A zero-length
// buffer with spare capacity still owns its block.
func bufBase[T any](s []T) unsafe.Pointer {
	if cap(s) == 0 {
		return Dangling()
	}
	return unsafe.Pointer(unsafe.SliceData(s[:cap(s)]))
}

// sliceAt rebuilds a slice without touching the sentinel.
func sliceAt[T any](p unsafe.Pointer, n, c uintptr) []T {
	if c == 0 || p == nil {
		return []T{}
	}
	return unsafe.Slice((*T)(p), c)[:n:c]
}
