// Package seenset provides a scalable approximate-membership set for
// deduplicating scan work: it answers "has this item been seen before?"
// with no false negatives and a bounded, tunable false-positive rate,
// while growing without a pre-declared maximum element count.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or role (e.g., bloom/, slog/, mock/).
package seenset

// Set is an approximate-membership set over canonical keys.
//
// A Set never reports a previously added key as absent (no false negatives).
// It may rarely report a never-added key as present (false positive), with a
// probability bounded by the implementation's configuration.
type Set interface {
	// Add inserts the key and reports whether it was already a member.
	// The test-and-set contract lets dedup callers decide "skip or process"
	// in a single call.
	Add(key Key) bool

	// Contains reports whether the key may have been added.
	Contains(key Key) bool

	// Len returns the exact number of distinct keys admitted by Add.
	Len() int
}
