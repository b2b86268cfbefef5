package flatabi

import (
	"fmt"
	"iter"
	"slices"
	"structs"
	"unsafe"
)

// UniqueSlice is the flat form of a []T the holder has exclusive access to.
// For T = int32 it matches
//
//	typedef struct { int32_t *ptr; uintptr_t len; } UniqueSlice_int32;
//
// While a UniqueSlice is live no other record or slice may read or write the
// memory it describes. Nothing checks this.
type UniqueSlice[T Layout] struct {
	_ structs.HostLayout

	ptr unsafe.Pointer
	len uintptr
}

// UniqueSliceOf records the base and length of s without copying. The
// caller gives up every other access to s until the record is consumed.
func UniqueSliceOf[T Layout](s []T) UniqueSlice[T] {
	return UniqueSlice[T]{ptr: viewBase(s), len: uintptr(len(s))}
}

// EmptyUniqueSlice returns a zero-length view at the sentinel address.
func EmptyUniqueSlice[T Layout]() UniqueSlice[T] {
	return UniqueSlice[T]{ptr: Dangling()}
}

// Slice converts the record back into a writable slice over the same memory.
func (r UniqueSlice[T]) Slice() []T {
	return sliceAt[T](r.ptr, r.len, r.len)
}

func (r UniqueSlice[T]) Ptr() unsafe.Pointer { return r.ptr }
func (r UniqueSlice[T]) Len() int            { return int(r.len) }
func (r UniqueSlice[T]) IsEmpty() bool       { return r.len == 0 }

func (r UniqueSlice[T]) At(i int) T { return r.Slice()[i] }

// Set writes v at index i. It panics when i is out of range.
func (r UniqueSlice[T]) Set(i int, v T) { r.Slice()[i] = v }

func (r UniqueSlice[T]) All() iter.Seq2[int, T] {
	return SharedSlice[T](r).All()
}

// Shared reborrows the memory read-only. r must not be used until the
// returned view is dropped.
func (r UniqueSlice[T]) Shared() SharedSlice[T] {
	return SharedSlice[T]{ptr: r.ptr, len: r.len}
}

func (r UniqueSlice[T]) Equal(o UniqueSlice[T]) bool {
	return slices.Equal(r.Slice(), o.Slice())
}

func (r UniqueSlice[T]) String() string {
	return fmt.Sprint(r.Slice())
}
