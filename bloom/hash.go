package bloom

import "github.com/cespare/xxhash/v2"

// Digest returns two independent 64-bit hashes of key. The first is the
// xxHash of the key bytes; the second is derived from the first with the
// SplitMix64 finalizer, which decorrelates the pair without reading the key
// a second time. h2 is forced odd so the k probe positions never degenerate
// to a single bit.
func Digest(key []byte) (h1, h2 uint64) {
	h1 = xxhash.Sum64(key)
	h2 = splitmix64(h1) | 1
	return h1, h2
}

// splitmix64 is the public-domain SplitMix64 finalizer.
func splitmix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// position returns the i-th probe position in [0, m) for the digest pair,
// using Kirsch-Mitzenmacher double hashing: (h1 + i*h2) mod m. For
// false-positive analysis this behaves like i independent uniform hashes
// while costing one hash of the key per operation.
func position(h1, h2, i, m uint64) uint64 {
	return (h1 + i*h2) % m
}
