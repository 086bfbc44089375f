package bloom

import (
	"math"

	"github.com/fwojciec/seenset"
)

// Filter is a fixed-capacity Bloom filter. Its bit array and hash count are
// sized once at construction for a target (capacity, errorRate) pair and
// never change; past capacity the false-positive rate is no longer bounded,
// which is what ScalableFilter exists to avoid.
type Filter struct {
	bits      *BitArray
	k         int
	capacity  int
	errorRate float64
	count     int
}

// EstimateParameters returns the optimal bit count m and hash count k for a
// filter holding up to n items at the target false-positive rate p:
//
//	m = ceil(-n * ln(p) / ln(2)^2)
//	k = round(m/n * ln(2)), minimum 1
func EstimateParameters(n int, p float64) (m uint64, k int) {
	mf := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	m = uint64(mf)
	k = int(math.Round(mf / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}
	return m, k
}

// NewFilter creates a Bloom filter sized for capacity items at the given
// false-positive rate.
func NewFilter(capacity int, errorRate float64) (*Filter, error) {
	if capacity <= 0 {
		return nil, seenset.Errorf(seenset.EINVALID, "filter capacity must be positive, got %d", capacity)
	}
	if errorRate <= 0 || errorRate >= 1 {
		return nil, seenset.Errorf(seenset.EINVALID, "filter error rate must be in (0, 1), got %g", errorRate)
	}
	return newFilter(capacity, errorRate), nil
}

// newFilter skips validation; callers must have validated the parameters.
func newFilter(capacity int, errorRate float64) *Filter {
	m, k := EstimateParameters(capacity, errorRate)
	return &Filter{
		bits:      NewBitArray(m),
		k:         k,
		capacity:  capacity,
		errorRate: errorRate,
	}
}

// Add inserts the key. Adding an already-present key flips no bits.
func (f *Filter) Add(key []byte) {
	h1, h2 := Digest(key)
	f.addHash(h1, h2)
}

// Contains reports whether the key may have been added. False positives are
// possible; false negatives are not.
func (f *Filter) Contains(key []byte) bool {
	h1, h2 := Digest(key)
	return f.containsHash(h1, h2)
}

func (f *Filter) addHash(h1, h2 uint64) {
	m := f.bits.Len()
	for i := uint64(0); i < uint64(f.k); i++ {
		f.bits.Set(position(h1, h2, i, m))
	}
	f.count++
}

func (f *Filter) containsHash(h1, h2 uint64) bool {
	m := f.bits.Len()
	for i := uint64(0); i < uint64(f.k); i++ {
		if !f.bits.Get(position(h1, h2, i, m)) {
			return false
		}
	}
	return true
}

// Saturated reports whether the filter has received as many items as it was
// sized for.
func (f *Filter) Saturated() bool { return f.count >= f.capacity }

// Cap returns the capacity the filter was sized for.
func (f *Filter) Cap() int { return f.capacity }

// ErrorRate returns the target false-positive rate at full capacity.
func (f *Filter) ErrorRate() float64 { return f.errorRate }

// K returns the number of hash positions per key.
func (f *Filter) K() int { return f.k }

// BitCount returns the length of the bit array in bits.
func (f *Filter) BitCount() uint64 { return f.bits.Len() }

// Count returns the number of items routed into this filter.
func (f *Filter) Count() int { return f.count }
