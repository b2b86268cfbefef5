//go:build !flatabi_noalloc

package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/flatabi"
)

// An owning record moves the block out and back without a second owner
// ever seeing it, so exactly one free succeeds.
func TestOwnershipTransferFreesOnce(t *testing.T) {
	h := NewHeap()
	buf, err := MakeSlice[int32](h, 3, 8)
	require.NoError(t, err)
	copy(buf, []int32{1, 2, 3})

	rec := flatabi.StableVecOf(&buf)
	require.Nil(t, buf)
	require.NoError(t, FreeSlice(h, buf))
	require.Len(t, h.Outstanding(), 1)

	back := rec.Take()
	require.Equal(t, []int32{1, 2, 3}, back)
	require.Equal(t, 8, cap(back))
	require.Nil(t, rec.Take())

	require.NoError(t, FreeSlice(h, back))
	require.Empty(t, h.Outstanding())
	require.ErrorIs(t, FreeSlice(h, back), ErrUnknownBlock)
}

func TestDroppedRecordLeaks(t *testing.T) {
	h := NewHeap()
	buf, err := MakeSlice[byte](h, 5, 5)
	require.NoError(t, err)
	copy(buf, "hello")
	rec := flatabi.StableStringOf(&buf)
	require.Equal(t, "hello", rec.String())

	out := h.Outstanding()
	require.Len(t, out, 1)
	require.Equal(t, uintptr(rec.Ptr()), out[0].Addr)
	require.Equal(t, uintptr(5), out[0].Size)
}

