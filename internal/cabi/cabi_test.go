//go:build cgo && !flatabi_noalloc

package cabi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/flatabi"
)

func TestLayoutMatchesC(t *testing.T) {
	c := CLayout()
	require.Equal(t, unsafe.Sizeof(flatabi.SharedSlice[int32]{}), c.ViewSize)
	require.Equal(t, unsafe.Sizeof(flatabi.UniqueStr{}), c.ViewSize)
	require.Equal(t, unsafe.Sizeof(uintptr(0)), c.ViewLenOffset)
	require.Equal(t, unsafe.Sizeof(flatabi.StableVec[int32]{}), c.OwningSize)
	require.Equal(t, unsafe.Sizeof(flatabi.StableString{}), c.OwningSize)
	require.Equal(t, 2*unsafe.Sizeof(uintptr(0)), c.OwningCapOffset)
}

func TestFieldOrder(t *testing.T) {
	data := []int32{1, 2, 3, 4}
	r := flatabi.SharedSliceOf(data)
	addr, n := Fields(r)
	require.Equal(t, uintptr(unsafe.Pointer(&data[0])), addr)
	require.Equal(t, uintptr(4), n)

	buf := make([]int32, 2, 5)
	v := flatabi.StableVecOf(&buf)
	addr, n, c := VecFields(&v)
	require.Equal(t, uintptr(v.Ptr()), addr)
	require.Equal(t, uintptr(2), n)
	require.Equal(t, uintptr(5), c)
	require.Equal(t, 3, Spare(&v))
}

func TestCReadsAndWrites(t *testing.T) {
	data := []int32{1, 2, 3, 4}
	require.Equal(t, int64(10), Sum(flatabi.SharedSliceOf(data)))
	require.Equal(t, int64(0), Sum(flatabi.EmptySharedSlice[int32]()))

	Scale(flatabi.UniqueSliceOf(data), 3)
	require.Equal(t, []int32{3, 6, 9, 12}, data)

	require.Equal(t, 2, CountByte(flatabi.SharedStrOf("hello"), 'l'))

	b := []byte("hello, wörld")
	Upper(flatabi.UniqueStrOf(b))
	require.Equal(t, "HELLO, WöRLD", string(b))

	text := make([]byte, 3, 10)
	s := flatabi.StableStringOf(&text)
	require.Equal(t, 7, StringSpare(&s))
}
