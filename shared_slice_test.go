package flatabi

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedSliceRoundTrip(t *testing.T) {
	src := []int32{1, 2, 3, 4}
	r := SharedSliceOf(src)
	require.Equal(t, 4, r.Len())
	require.Equal(t, []int32{1, 2, 3, 4}, r.Slice())

	back := r.Slice()
	require.Same(t, &src[0], &back[0])
	require.Equal(t, cap(back), len(back))
}

func TestSharedSliceEmpty(t *testing.T) {
	r := SharedSliceOf([]uint64{})
	require.True(t, r.IsEmpty())
	require.Equal(t, Dangling(), r.Ptr())
	back := r.Slice()
	require.NotNil(t, back)
	require.Len(t, back, 0)

	var nilSlice []float64
	n := SharedSliceOf(nilSlice)
	require.Equal(t, Dangling(), n.Ptr())
	require.Equal(t, EmptySharedSlice[float64](), n)
	require.Len(t, n.Slice(), 0)
}

func TestSharedSliceEmptyLargeElement(t *testing.T) {
	r := EmptySharedSlice[[4]complex128]()
	require.Equal(t, 0, r.Len())
	require.NotNil(t, r.Slice())
}

func TestSharedSliceSubslice(t *testing.T) {
	backing := []uint16{10, 20, 30, 40, 50}
	r := SharedSliceOf(backing[1:3])
	require.Equal(t, []uint16{20, 30}, r.Slice())
	require.Equal(t, 2, cap(r.Slice()))
}

func TestSharedSliceAccess(t *testing.T) {
	r := SharedSliceOf([]int8{-1, 0, 1})
	require.Equal(t, int8(1), r.At(2))
	require.Panics(t, func() { r.At(3) })

	var got []int8
	for i, v := range r.All() {
		require.Equal(t, r.At(i), v)
		got = append(got, v)
		if i == 1 {
			break
		}
	}
	require.Equal(t, []int8{-1, 0}, got)
	require.Equal(t, "[-1 0 1]", r.String())
}

func TestSharedSliceEqual(t *testing.T) {
	a := SharedSliceOf([]float32{1.5, 2.5})
	b := SharedSliceOf([]float32{1.5, 2.5})
	require.NotEqual(t, a.Ptr(), b.Ptr())
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(SharedSliceOf([]float32{1.5})))
	require.True(t, EmptySharedSlice[float32]().Equal(SharedSliceOf([]float32(nil))))
}

func TestSharedSliceProperties(t *testing.T) {
	roundTrip := func(s []int64) bool {
		r := SharedSliceOf(s)
		return r.Len() == len(s) && assert.ObjectsAreEqual(append([]int64{}, s...), append([]int64{}, r.Slice()...))
	}
	require.NoError(t, quick.Check(roundTrip, &quick.Config{}))

	sameMemory := func(s []uint32) bool {
		if len(s) == 0 {
			return true
		}
		back := SharedSliceOf(s).Slice()
		return &back[0] == &s[0] && len(back) == len(s)
	}
	require.NoError(t, quick.Check(sameMemory, &quick.Config{}))
}

func TestSharedSliceOfPointers(t *testing.T) {
	a, b := 1.0, 2.0
	r := SharedSliceOf([]*float64{&a, &b})
	require.Same(t, &b, r.At(1))
}
