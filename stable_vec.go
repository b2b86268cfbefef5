//go:build !flatabi_noalloc

package flatabi

import (
	"fmt"
	"structs"
	"unsafe"
)

// StableVec is the flat form of an owned, growable []T: pointer, length and
// capacity. For T = int32 it matches
//
//	typedef struct { int32_t *ptr; uintptr_t len; uintptr_t cap; } StableVec_int32;
//
// The record owns the whole capacity block. It must be turned back into a
// slice by the same runtime, or the same alloc.Allocator, that produced the
// block. A record dropped without Take is never freed by this package: Go
// heap blocks are left to the collector and off-heap blocks leak.
type StableVec[T Layout] struct {
	_ structs.HostLayout

	ptr unsafe.Pointer
	len uintptr
	cap uintptr
}

// StableVecOf moves the buffer in *s into a record and sets *s to nil so
// the old slice header can no longer reach it.
func StableVecOf[T Layout](s *[]T) StableVec[T] {
	v := *s
	*s = nil
	return StableVec[T]{ptr: bufBase(v), len: uintptr(len(v)), cap: uintptr(cap(v))}
}

// EmptyStableVec is the record of an empty buffer.
func EmptyStableVec[T Layout]() StableVec[T] {
	var s []T
	return StableVecOf(&s)
}

// Take hands the buffer back as a slice with the recorded length and
// capacity and leaves the record consumed. Taking a consumed record
// returns nil.
func (v *StableVec[T]) Take() []T {
	if v.ptr == nil {
		return nil
	}
	s := sliceAt[T](v.ptr, v.len, v.cap)
	*v = StableVec[T]{}
	return s
}

// Slice views the initialized prefix without giving up ownership. The view
// must not outlive the record.
func (v *StableVec[T]) Slice() []T {
	return sliceAt[T](v.ptr, v.len, v.len)
}

// Consumed reports whether the record was taken or never constructed.
func (v *StableVec[T]) Consumed() bool { return v.ptr == nil }

func (v *StableVec[T]) Ptr() unsafe.Pointer { return v.ptr }
func (v *StableVec[T]) Len() int            { return int(v.len) }
func (v *StableVec[T]) Cap() int            { return int(v.cap) }

func (v *StableVec[T]) String() string {
	return fmt.Sprint(v.Slice())
}
