// Package slog provides logging decorators for seenset domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/seenset"
)

// Ensure LoggingSet implements seenset.Set.
var _ seenset.Set = (*LoggingSet)(nil)

// LoggingSet wraps a Set with debug logging for every operation. The
// underlying structure stays silent; observability is opt-in by decoration.
type LoggingSet struct {
	next   seenset.Set
	logger *slog.Logger
}

// NewLoggingSet creates a new LoggingSet.
func NewLoggingSet(next seenset.Set, logger *slog.Logger) *LoggingSet {
	return &LoggingSet{next: next, logger: logger}
}

// Add delegates to the wrapped set and logs the outcome.
func (s *LoggingSet) Add(key seenset.Key) bool {
	begin := time.Now()
	dup := s.next.Add(key)
	s.logger.Debug("add",
		"dup", dup,
		"len", s.next.Len(),
		"duration", time.Since(begin),
	)
	return dup
}

// Contains delegates to the wrapped set and logs the outcome.
func (s *LoggingSet) Contains(key seenset.Key) bool {
	begin := time.Now()
	found := s.next.Contains(key)
	s.logger.Debug("contains",
		"found", found,
		"duration", time.Since(begin),
	)
	return found
}

// Len delegates to the wrapped set.
func (s *LoggingSet) Len() int {
	return s.next.Len()
}
