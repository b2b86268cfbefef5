//go:build !flatabi_noalloc

package flatabi

import (
	"structs"
	"unicode/utf8"
	"unsafe"
)

// StableString is the flat form of an owned, growable UTF-8 byte buffer:
//
//	typedef struct { uint8_t *ptr; uintptr_t len; uintptr_t cap; } StableString;
//
// It carries the ownership rules of StableVec and the UTF-8 obligation of
// UniqueStr.
type StableString struct {
	_ structs.HostLayout

	ptr unsafe.Pointer
	len uintptr
	cap uintptr
}

// StableStringOf moves *b into a record and sets *b to nil. b must hold
// valid UTF-8.
func StableStringOf(b *[]byte) StableString {
	return StableString(StableVecOf(b))
}

// NewStableString validates *b before moving it. On error *b is untouched.
func NewStableString(b *[]byte) (StableString, error) {
	if !utf8.Valid(*b) {
		return StableString{}, ErrInvalidUTF8
	}
	return StableStringOf(b), nil
}

// EmptyStableString is the record of an empty buffer.
func EmptyStableString() StableString {
	return StableString(EmptyStableVec[byte]())
}

// Take hands the buffer back and leaves the record consumed.
func (s *StableString) Take() []byte {
	return (*StableVec[byte])(s).Take()
}

// String views the text without copying or re-validating. The result must
// not outlive the record and must not be used after Take.
func (s *StableString) String() string {
	return SharedStr{ptr: s.ptr, len: s.len}.String()
}

// Bytes views the initialized prefix for in-place edits that keep it
// valid UTF-8.
func (s *StableString) Bytes() []byte {
	return (*StableVec[byte])(s).Slice()
}

func (s *StableString) Consumed() bool      { return s.ptr == nil }
func (s *StableString) Ptr() unsafe.Pointer { return s.ptr }
func (s *StableString) Len() int            { return int(s.len) }
func (s *StableString) Cap() int            { return int(s.cap) }
