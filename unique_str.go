package flatabi

import (
	"structs"
	"unicode/utf8"
	"unsafe"
)

// UniqueStr is the flat form of a writable UTF-8 byte buffer:
//
//	typedef struct { uint8_t *ptr; uintptr_t len; } UniqueStr;
//
// The holder has exclusive access to the bytes and must leave them valid
// UTF-8 on every exit path.
type UniqueStr struct {
	_ structs.HostLayout

	ptr unsafe.Pointer
	len uintptr
}

// UniqueStrOf records b without validating it. b must hold valid UTF-8.
func UniqueStrOf(b []byte) UniqueStr {
	return UniqueStr{ptr: viewBase(b), len: uintptr(len(b))}
}

// NewUniqueStr is UniqueStrOf for bytes that have not been validated yet.
func NewUniqueStr(b []byte) (UniqueStr, error) {
	if !utf8.Valid(b) {
		return UniqueStr{}, ErrInvalidUTF8
	}
	return UniqueStrOf(b), nil
}

// EmptyUniqueStr returns a zero-length text view at the sentinel address.
func EmptyUniqueStr() UniqueStr {
	return UniqueStr{ptr: Dangling()}
}

// String returns the text without copying. The result aliases the record's
// bytes and changes if they are mutated.
func (r UniqueStr) String() string {
	return SharedStr(r).String()
}

// Bytes converts the record back into the writable byte slice it was built
// from. Writes must keep the bytes valid UTF-8.
func (r UniqueStr) Bytes() []byte {
	return sliceAt[byte](r.ptr, r.len, r.len)
}

// MakeASCIIUpper upper-cases ASCII letters in place. Multi-byte sequences
// are left alone, so the text stays valid.
func (r UniqueStr) MakeASCIIUpper() {
	b := r.Bytes()
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}

// MakeASCIILower lower-cases ASCII letters in place.
func (r UniqueStr) MakeASCIILower() {
	b := r.Bytes()
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
}

// Shared reborrows the text read-only. r must not be used until the
// returned view is dropped.
func (r UniqueStr) Shared() SharedStr { return SharedStr(r) }

func (r UniqueStr) Ptr() unsafe.Pointer { return r.ptr }
func (r UniqueStr) Len() int            { return int(r.len) }
func (r UniqueStr) IsEmpty() bool       { return r.len == 0 }

func (r UniqueStr) Equal(o UniqueStr) bool { return r.String() == o.String() }
