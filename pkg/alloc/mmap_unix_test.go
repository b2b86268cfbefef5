//go:build linux || darwin

package alloc

import (
	"os"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"
)

func TestMmapRoundTrip(t *testing.T) {
	m := NewMmap(log.NewNopLogger())
	s, err := MakeSlice[uint16](m, 4, 4)
	require.NoError(t, err)
	require.Equal(t, 1, m.Mapped())
	copy(s, []uint16{7, 8, 9, 10})
	require.Equal(t, []uint16{7, 8, 9, 10}, s)

	require.NoError(t, FreeSlice(m, s))
	require.Zero(t, m.Mapped())
	require.ErrorIs(t, FreeSlice(m, s), ErrUnknownBlock)
}

func TestMmapPageGranular(t *testing.T) {
	m := NewMmap(nil)
	page := uintptr(os.Getpagesize())
	p, err := m.Allocate(page+1, 8)
	require.NoError(t, err)
	require.Zero(t, uintptr(p)%page)
	require.ErrorIs(t, m.Deallocate(p, 1, 8), ErrSizeMismatch)
	require.Equal(t, 1, m.Mapped())
	require.NoError(t, m.Deallocate(p, page+1, 8))

	_, err = m.Allocate(8, 2*page)
	require.ErrorIs(t, err, ErrBadAlign)

	_, err = m.Allocate(^uintptr(0)-page, 8)
	require.ErrorIs(t, err, ErrBadLength)
	require.Zero(t, m.Mapped())
}
