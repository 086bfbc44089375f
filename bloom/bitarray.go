package bloom

import "fmt"

// BitArray is a fixed-length, densely packed sequence of bits. Its size is
// set at construction and never changes; bits only ever flip from 0 to 1.
type BitArray struct {
	words []uint64
	size  uint64
}

// NewBitArray returns a BitArray of the given size with all bits unset.
func NewBitArray(size uint64) *BitArray {
	return &BitArray{
		words: make([]uint64, (size+63)/64),
		size:  size,
	}
}

// Len returns the number of bits in the array.
func (b *BitArray) Len() uint64 { return b.size }

// Get reports whether bit i is set.
func (b *BitArray) Get(i uint64) bool {
	b.check(i)
	return b.words[i>>6]&(1<<(i&63)) != 0
}

// Set sets bit i. Setting an already-set bit is a no-op.
func (b *BitArray) Set(i uint64) {
	b.check(i)
	b.words[i>>6] |= 1 << (i & 63)
}

// check panics on an out-of-range index. Indices are always derived
// internally modulo the array size, so an out-of-range index means the
// indexing logic itself is broken, not that the caller passed bad input.
func (b *BitArray) check(i uint64) {
	if i >= b.size {
		panic(fmt.Sprintf("bloom: bit index %d out of range [0, %d)", i, b.size))
	}
}
