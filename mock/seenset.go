package mock

import "github.com/fwojciec/seenset"

var _ seenset.Set = (*Set)(nil)

// Set is a mock implementation of seenset.Set.
type Set struct {
	AddFn      func(key seenset.Key) bool
	ContainsFn func(key seenset.Key) bool
	LenFn      func() int
}

func (s *Set) Add(key seenset.Key) bool {
	return s.AddFn(key)
}

func (s *Set) Contains(key seenset.Key) bool {
	return s.ContainsFn(key)
}

func (s *Set) Len() int {
	return s.LenFn()
}
