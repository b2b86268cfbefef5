// Package alloc provides the allocator side of owning records: blocks that
// outlive any single slice header and are freed exactly once, by the
// allocator that produced them.
//
// Owning records in package flatabi do not remember which allocator their
// memory came from. A buffer made with MakeSlice must be released with
// FreeSlice on the same Allocator; the process-wide Default exists so that
// every component agrees on that identity.
package alloc

import (
	"math"
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/rawbytedev/flatabi"
)

var (
	ErrUnknownBlock = errors.New("alloc: block not owned by this allocator")
	ErrSizeMismatch = errors.New("alloc: block size or alignment does not match allocation")
	ErrBadAlign     = errors.New("alloc: alignment must be a power of two")
	ErrBadLength    = errors.New("alloc: invalid length, capacity or block size")
	ErrPinned       = errors.New("alloc: default allocator already in use")
)

// Allocator hands out raw blocks. Deallocate must be called with the exact
// size and alignment passed to Allocate.
type Allocator interface {
	Allocate(size, align uintptr) (unsafe.Pointer, error)
	Deallocate(p unsafe.Pointer, size, align uintptr) error
}

var (
	defaultMu    sync.Mutex
	defaultAlloc Allocator = NewHeap()
	pinned       atomic.Bool
)

// Default returns the process-wide allocator and pins it: once any caller
// has obtained it, SetDefault fails.
func Default() Allocator {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	pinned.Store(true)
	return defaultAlloc
}

// SetDefault replaces the process-wide allocator. It must run before the
// first call to Default.
func SetDefault(a Allocator) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if pinned.Load() {
		return ErrPinned
	}
	defaultAlloc = a
	return nil
}

// MakeSlice allocates a []T of the given length and capacity from a. The
// memory is zeroed. Element types holding Go pointers are rejected at
// compile time because the collector does not scan these blocks.
func MakeSlice[T flatabi.PointerFree](a Allocator, length, capacity int) ([]T, error) {
	if length < 0 || capacity < length {
		return nil, errors.Wrapf(ErrBadLength, "len %d cap %d", length, capacity)
	}
	if capacity == 0 {
		return []T{}, nil
	}
	if tooMany[T](capacity) {
		return nil, errors.Wrapf(ErrBadLength, "cap %d overflows the address space", capacity)
	}
	size, align := blockOf[T](capacity)
	p, err := a.Allocate(size, align)
	if err != nil {
		return nil, errors.Wrapf(err, "allocate %d bytes", size)
	}
	s := unsafe.Slice((*T)(p), capacity)
	clear(s)
	return s[:length], nil
}

// FreeSlice returns the block behind s to a. s must span the block that
// MakeSlice returned, which it does as long as its capacity was not cut.
func FreeSlice[T flatabi.PointerFree](a Allocator, s []T) error {
	if cap(s) == 0 {
		return nil
	}
	size, align := blockOf[T](cap(s))
	return a.Deallocate(unsafe.Pointer(unsafe.SliceData(s)), size, align)
}

func blockOf[T any](n int) (size, align uintptr) {
	var zero T
	return unsafe.Sizeof(zero) * uintptr(n), unsafe.Alignof(zero)
}

// tooMany reports whether n elements of T do not fit in one block.
func tooMany[T any](n int) bool {
	var zero T
	size := unsafe.Sizeof(zero)
	return size != 0 && uintptr(n) > uintptr(math.MaxInt)/size
}

// oversized reports whether a block of size bytes plus slack bytes cannot
// be addressed as one Go slice.
func oversized(size, slack uintptr) bool {
	return size > uintptr(math.MaxInt)-slack
}

func validAlign(align uintptr) bool {
	return align != 0 && align&(align-1) == 0
}
