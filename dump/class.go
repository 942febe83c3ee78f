// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package dump

import (
	"maps"
	"slices"
)

// Class is how a word is presented.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_SENTINEL  = Class(0) // sentinel
	CLASS_ATTENTION = Class(1) // attention
)

const (
	ALL_ONES = uint32(0xffff_ffff) // Erased flash, unbacked bus reads.
	DEADBEEF = uint32(0xdead_beef) // Fill marker.
)

// Sentinels is the set of filler patterns that are not worth highlighting.
type Sentinels map[uint32]struct{}

// DefaultSentinels returns the all-ones and dead-beef filler patterns.
func DefaultSentinels() Sentinels {
	return NewSentinels(ALL_ONES, DEADBEEF)
}

// NewSentinels returns a set of the given filler patterns.
func NewSentinels(words ...uint32) (sentinels Sentinels) {
	sentinels = make(Sentinels, len(words))
	for _, word := range words {
		sentinels[word] = struct{}{}
	}
	return
}

// Classify returns CLASS_SENTINEL for a filler pattern, and CLASS_ATTENTION
// for every other word.
func (sentinels Sentinels) Classify(word uint32) Class {
	if _, ok := sentinels[word]; ok {
		return CLASS_SENTINEL
	}
	return CLASS_ATTENTION
}

// Words returns the sentinel patterns, in increasing order.
func (sentinels Sentinels) Words() []uint32 {
	return slices.Sorted(maps.Keys(sentinels))
}
