//go:build cgo && !flatabi_noalloc

// Package cabi declares the flat records in C and hands Go records to C by
// value, so tests can confirm both compilers agree on the layout.
package cabi

/*
#include <stddef.h>
#include <stdint.h>

typedef struct { int32_t const *ptr; uintptr_t len; } SharedSlice_int32;
typedef struct { int32_t *ptr; uintptr_t len; } UniqueSlice_int32;
typedef struct { uint8_t const *ptr; uintptr_t len; } SharedStr;
typedef struct { uint8_t *ptr; uintptr_t len; } UniqueStr;
typedef struct { int32_t *ptr; uintptr_t len; uintptr_t cap; } StableVec_int32;
typedef struct { uint8_t *ptr; uintptr_t len; uintptr_t cap; } StableString;

static int64_t sum_int32(SharedSlice_int32 s) {
	int64_t total = 0;
	for (uintptr_t i = 0; i < s.len; i++) {
		total += s.ptr[i];
	}
	return total;
}

static void scale_int32(UniqueSlice_int32 s, int32_t k) {
	for (uintptr_t i = 0; i < s.len; i++) {
		s.ptr[i] *= k;
	}
}

static uintptr_t count_byte(SharedStr s, uint8_t c) {
	uintptr_t n = 0;
	for (uintptr_t i = 0; i < s.len; i++) {
		if (s.ptr[i] == c) {
			n++;
		}
	}
	return n;
}

static void ascii_upper(UniqueStr s) {
	for (uintptr_t i = 0; i < s.len; i++) {
		if (s.ptr[i] >= 'a' && s.ptr[i] <= 'z') {
			s.ptr[i] -= 'a' - 'A';
		}
	}
}

static uintptr_t vec_spare(StableVec_int32 v) { return v.cap - v.len; }
static uintptr_t string_spare(StableString s) { return s.cap - s.len; }

static uintptr_t shared_addr(SharedSlice_int32 s) { return (uintptr_t)s.ptr; }
static uintptr_t shared_len(SharedSlice_int32 s) { return s.len; }
static uintptr_t vec_addr(StableVec_int32 v) { return (uintptr_t)v.ptr; }
static uintptr_t vec_len(StableVec_int32 v) { return v.len; }
static uintptr_t vec_cap(StableVec_int32 v) { return v.cap; }

static size_t view_size(void) { return sizeof(SharedSlice_int32); }
static size_t view_len_offset(void) { return offsetof(SharedSlice_int32, len); }
static size_t owning_size(void) { return sizeof(StableVec_int32); }
static size_t owning_cap_offset(void) { return offsetof(StableVec_int32, cap); }
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/rawbytedev/flatabi"
)

// Layout is the C view of the record shapes.
type Layout struct {
	ViewSize, ViewLenOffset     uintptr
	OwningSize, OwningCapOffset uintptr
}

func CLayout() Layout {
	return Layout{
		ViewSize:        uintptr(C.view_size()),
		ViewLenOffset:   uintptr(C.view_len_offset()),
		OwningSize:      uintptr(C.owning_size()),
		OwningCapOffset: uintptr(C.owning_cap_offset()),
	}
}

func Sum(r flatabi.SharedSlice[int32]) int64 {
	n := C.sum_int32(*(*C.SharedSlice_int32)(unsafe.Pointer(&r)))
	runtime.KeepAlive(r)
	return int64(n)
}

func Scale(r flatabi.UniqueSlice[int32], k int32) {
	C.scale_int32(*(*C.UniqueSlice_int32)(unsafe.Pointer(&r)), C.int32_t(k))
	runtime.KeepAlive(r)
}

func CountByte(r flatabi.SharedStr, c byte) int {
	n := C.count_byte(*(*C.SharedStr)(unsafe.Pointer(&r)), C.uint8_t(c))
	runtime.KeepAlive(r)
	return int(n)
}

func Upper(r flatabi.UniqueStr) {
	C.ascii_upper(*(*C.UniqueStr)(unsafe.Pointer(&r)))
	runtime.KeepAlive(r)
}

// Fields reads a shared view's address and length back from the C side.
func Fields(r flatabi.SharedSlice[int32]) (addr, length uintptr) {
	c := *(*C.SharedSlice_int32)(unsafe.Pointer(&r))
	return uintptr(C.shared_addr(c)), uintptr(C.shared_len(c))
}

// VecFields reads an owning record's address, length and capacity back
// from the C side.
func VecFields(v *flatabi.StableVec[int32]) (addr, length, capacity uintptr) {
	c := *(*C.StableVec_int32)(unsafe.Pointer(v))
	return uintptr(C.vec_addr(c)), uintptr(C.vec_len(c)), uintptr(C.vec_cap(c))
}

func Spare(v *flatabi.StableVec[int32]) int {
	return int(C.vec_spare(*(*C.StableVec_int32)(unsafe.Pointer(v))))
}

func StringSpare(s *flatabi.StableString) int {
	return int(C.string_spare(*(*C.StableString)(unsafe.Pointer(s))))
}
