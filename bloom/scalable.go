package bloom

import (
	"sync"

	"github.com/fwojciec/seenset"
)

// Compile-time interface verification.
var _ seenset.Set = (*ScalableFilter)(nil)

// Config holds the growth policy of a ScalableFilter. The first slice is
// sized for (InitialCapacity, InitialErrorRate); each subsequent slice
// multiplies capacity by GrowthRatio and error rate by TighteningRatio.
//
// Because TighteningRatio < 1, the per-slice error targets form a convergent
// geometric series: the lifetime false-positive rate of the whole structure
// stays below InitialErrorRate / (1 - TighteningRatio) no matter how many
// items are added.
type Config struct {
	InitialCapacity  int
	InitialErrorRate float64
	GrowthRatio      float64
	TighteningRatio  float64
}

// SmallSetGrowth returns the growth policy for workloads expected to stay
// near their initial capacity: slow growth, gentle tightening.
func SmallSetGrowth() Config {
	return Config{
		InitialCapacity:  1000,
		InitialErrorRate: 0.001,
		GrowthRatio:      2,
		TighteningRatio:  0.9,
	}
}

// LargeSetGrowth returns the growth policy for workloads expected to scale
// far beyond their initial capacity: aggressive growth, faster tightening.
func LargeSetGrowth() Config {
	return Config{
		InitialCapacity:  1000,
		InitialErrorRate: 0.001,
		GrowthRatio:      4,
		TighteningRatio:  0.85,
	}
}

// validate returns an error describing the first invalid field, if any.
func (c Config) validate() error {
	if c.InitialCapacity <= 0 {
		return seenset.Errorf(seenset.EINVALID, "initial capacity must be positive, got %d", c.InitialCapacity)
	}
	if c.InitialErrorRate <= 0 || c.InitialErrorRate >= 1 {
		return seenset.Errorf(seenset.EINVALID, "initial error rate must be in (0, 1), got %g", c.InitialErrorRate)
	}
	if c.GrowthRatio <= 1 {
		return seenset.Errorf(seenset.EINVALID, "growth ratio must be greater than 1, got %g", c.GrowthRatio)
	}
	if c.TighteningRatio <= 0 || c.TighteningRatio >= 1 {
		return seenset.Errorf(seenset.EINVALID, "tightening ratio must be in (0, 1), got %g", c.TighteningRatio)
	}
	return nil
}

// ScalableFilter is an approximate-membership set that grows without a
// pre-declared maximum element count. It holds an ordered, append-only
// sequence of fixed-capacity Bloom filters ("slices"); membership is the OR
// over all slices, and inserts go to the newest slice only, appending a new
// one when it saturates.
//
// It is safe for concurrent use by multiple goroutines.
type ScalableFilter struct {
	mu     sync.RWMutex
	cfg    Config
	slices []*Filter
	count  int
}

// NewScalable creates a ScalableFilter with the given growth policy.
func NewScalable(cfg Config) (*ScalableFilter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &ScalableFilter{cfg: cfg}, nil
}

// Add inserts the key and reports whether it was already a member. The
// membership check, the grow decision, and the write happen under one
// exclusive lock so that two concurrent adds of the same novel key cannot
// both report false or double-count it.
func (s *ScalableFilter) Add(key seenset.Key) bool {
	h1, h2 := Digest(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containsHash(h1, h2) {
		return true
	}
	if n := len(s.slices); n == 0 || s.slices[n-1].Saturated() {
		s.grow()
	}
	s.slices[len(s.slices)-1].addHash(h1, h2)
	s.count++
	return false
}

// Contains reports whether the key may have been added. False positives are
// possible (bounded by the growth policy); false negatives are not.
func (s *ScalableFilter) Contains(key seenset.Key) bool {
	h1, h2 := Digest(key)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.containsHash(h1, h2)
}

// Len returns the exact number of distinct keys admitted by Add. This is a
// true counter, not a bit-density estimate: Add only increments it after
// establishing the key was not already a member.
func (s *ScalableFilter) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Slices returns a snapshot of the slice list, newest last. Callers that
// need durability can read each slice's parameters and serialize them;
// mutating the filters themselves would break the membership invariants.
func (s *ScalableFilter) Slices() []*Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Filter, len(s.slices))
	copy(out, s.slices)
	return out
}

// containsHash scans newest slice first: in dedup workloads repeats tend to
// be recent, so the common hit short-circuits early.
func (s *ScalableFilter) containsHash(h1, h2 uint64) bool {
	for i := len(s.slices) - 1; i >= 0; i-- {
		if s.slices[i].containsHash(h1, h2) {
			return true
		}
	}
	return false
}

// grow appends a new slice sized from the previous one, or from the initial
// parameters for the first slice. The parameters are derived from a
// validated Config, so construction cannot fail here.
func (s *ScalableFilter) grow() {
	capacity := s.cfg.InitialCapacity
	errorRate := s.cfg.InitialErrorRate
	if n := len(s.slices); n > 0 {
		last := s.slices[n-1]
		capacity = int(float64(last.Cap()) * s.cfg.GrowthRatio)
		errorRate = last.ErrorRate() * s.cfg.TighteningRatio
	}
	s.slices = append(s.slices, newFilter(capacity, errorRate))
}
