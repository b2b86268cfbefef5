package flatabi

import (
	"fmt"
	"iter"
	"slices"
	"structs"
	"unsafe"
)

// SharedSlice is the flat form of a read-only []T: a pointer followed by a
// length. For T = int32 it matches
//
//	typedef struct { int32_t const *ptr; uintptr_t len; } SharedSlice_int32;
//
// Any number of SharedSlice records may describe the same memory, but nothing
// may write to it while one of them is live.
type SharedSlice[T Layout] struct {
	_ structs.HostLayout

	ptr unsafe.Pointer
	len uintptr
}

// SharedSliceOf records the base and length of s without copying.
func SharedSliceOf[T Layout](s []T) SharedSlice[T] {
	return SharedSlice[T]{ptr: viewBase(s), len: uintptr(len(s))}
}

// EmptySharedSlice returns a zero-length view at the sentinel address.
func EmptySharedSlice[T Layout]() SharedSlice[T] {
	return SharedSlice[T]{ptr: Dangling()}
}

// Slice converts the record back into a slice over the same memory. Nothing
// is validated.
func (r SharedSlice[T]) Slice() []T {
	return sliceAt[T](r.ptr, r.len, r.len)
}

// Ptr returns the recorded base address.
func (r SharedSlice[T]) Ptr() unsafe.Pointer { return r.ptr }

func (r SharedSlice[T]) Len() int      { return int(r.len) }
func (r SharedSlice[T]) IsEmpty() bool { return r.len == 0 }

// At returns element i. It panics when i is out of range, like indexing.
func (r SharedSlice[T]) At(i int) T {
	return r.Slice()[i]
}

// All iterates over index/element pairs.
func (r SharedSlice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range r.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal compares the elements the two records describe, not their addresses.
func (r SharedSlice[T]) Equal(o SharedSlice[T]) bool {
	return slices.Equal(r.Slice(), o.Slice())
}

func (r SharedSlice[T]) String() string {
	return fmt.Sprint(r.Slice())
}
