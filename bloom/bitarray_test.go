package bloom_test

import (
	"testing"

	"github.com/fwojciec/seenset/bloom"
	"github.com/stretchr/testify/assert"
)

func TestBitArray_GetAndSet(t *testing.T) {
	t.Parallel()

	b := bloom.NewBitArray(128)

	// All bits start unset
	assert.False(t, b.Get(0))
	assert.False(t, b.Get(63))
	assert.False(t, b.Get(64))
	assert.False(t, b.Get(127))

	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(127)

	assert.True(t, b.Get(0))
	assert.True(t, b.Get(63))
	assert.True(t, b.Get(64))
	assert.True(t, b.Get(127))

	// Neighbors are untouched
	assert.False(t, b.Get(1))
	assert.False(t, b.Get(62))
	assert.False(t, b.Get(65))
	assert.False(t, b.Get(126))
}

func TestBitArray_Set_is_idempotent(t *testing.T) {
	t.Parallel()

	b := bloom.NewBitArray(64)

	b.Set(42)
	b.Set(42)
	b.Set(42)

	assert.True(t, b.Get(42))
	for i := uint64(0); i < 64; i++ {
		if i != 42 {
			assert.False(t, b.Get(i), "bit %d should be unset", i)
		}
	}
}

func TestBitArray_Len(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(1), bloom.NewBitArray(1).Len())
	assert.Equal(t, uint64(65), bloom.NewBitArray(65).Len())
	assert.Equal(t, uint64(10_000_000), bloom.NewBitArray(10_000_000).Len())
}

func TestBitArray_panics_on_out_of_range_index(t *testing.T) {
	t.Parallel()

	b := bloom.NewBitArray(100)

	assert.Panics(t, func() { b.Get(100) })
	assert.Panics(t, func() { b.Set(100) })
	assert.NotPanics(t, func() { b.Set(99) })
}

func TestBitArray_supports_millions_of_bits(t *testing.T) {
	t.Parallel()

	const size = 50_000_000
	b := bloom.NewBitArray(size)

	b.Set(0)
	b.Set(size / 2)
	b.Set(size - 1)

	assert.True(t, b.Get(0))
	assert.True(t, b.Get(size/2))
	assert.True(t, b.Get(size-1))
	assert.False(t, b.Get(size/2+1))
}
