// Package flatabi provides flat, fixed-layout records for Go slices and
// strings so they can cross a boundary that only understands raw bytes: a
// cgo call, a plugin, or another build of the same program.
//
// A slice header and a string header are runtime representations that Go
// may change between releases. The records here are plain structs of a
// pointer and one or two uintptr-sized integers, in a fixed order:
//
//	SharedSlice[T], UniqueSlice[T]   { T *ptr; uintptr_t len; }
//	SharedStr, UniqueStr             { uint8_t *ptr; uintptr_t len; }
//	StableVec[T]                     { T *ptr; uintptr_t len; uintptr_t cap; }
//	StableString                     { uint8_t *ptr; uintptr_t len; uintptr_t cap; }
//
// # Soundness
//
// Records are built only from existing Go values and convert back without
// copying or validation. Once a record leaves Go memory nothing tracks the
// memory it points at, so the following are caller obligations and their
// violation is undefined behaviour, not a reported error:
//
//   - A view must not be converted back after the memory it describes was
//     released or reused.
//   - While a unique view or an owning record is live, no other record or
//     slice may read or write the same memory.
//   - Text records must hold valid UTF-8 for their whole length at all
//     times. Conversions back to string do not re-validate.
//   - An owning record must be converted back in the same Go runtime, or
//     with the same allocator, that produced its memory. Two c-shared
//     libraries each embed their own runtime and do not qualify.
//
// Records with pointer element types may cross a plugin boundary but not a
// cgo call: C may not hold Go pointers.
//
// Every record is itself a structs.HostLayout struct, so package layoutcheck
// admits records (and arrays of them) as elements of other flat memory.
//
// # Empty records
//
// An empty record points at a package-level sentinel aligned for every
// admissible element type (see Dangling). The sentinel is never
// dereferenced; converting an empty record back yields a non-nil empty
// slice.
package flatabi
