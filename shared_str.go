package flatabi

import (
	"strconv"
	"structs"
	"unsafe"
)

// SharedStr is the flat form of a string:
//
//	typedef struct { uint8_t const *ptr; uintptr_t len; } SharedStr;
//
// The bytes must stay valid UTF-8 and unmodified while the record is live.
type SharedStr struct {
	_ structs.HostLayout

	ptr unsafe.Pointer
	len uintptr
}

// SharedStrOf records s without copying. Go strings are immutable, so the
// record inherits their validity.
func SharedStrOf(s string) SharedStr {
	if len(s) == 0 {
		return SharedStr{ptr: Dangling()}
	}
	return SharedStr{ptr: unsafe.Pointer(unsafe.StringData(s)), len: uintptr(len(s))}
}

// EmptySharedStr returns a zero-length text view at the sentinel address.
func EmptySharedStr() SharedStr {
	return SharedStr{ptr: Dangling()}
}

// String converts the record back into a string over the same bytes. The
// bytes are not re-validated.
func (r SharedStr) String() string {
	if r.len == 0 || r.ptr == nil {
		return ""
	}
	return unsafe.String((*byte)(r.ptr), r.len)
}

// Bytes returns a read-only byte view of the text. Writing through it is
// undefined behaviour.
func (r SharedStr) Bytes() []byte {
	return sliceAt[byte](r.ptr, r.len, r.len)
}

func (r SharedStr) Ptr() unsafe.Pointer { return r.ptr }
func (r SharedStr) Len() int            { return int(r.len) }
func (r SharedStr) IsEmpty() bool       { return r.len == 0 }

func (r SharedStr) Equal(o SharedStr) bool { return r.String() == o.String() }

// GoString prints the text quoted, the way %q would.
func (r SharedStr) GoString() string { return strconv.Quote(r.String()) }
