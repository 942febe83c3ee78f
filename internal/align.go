// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package internal

import (
	"golang.org/x/exp/constraints"
)

// AlignDown rounds value down to a multiple of align, a power of two.
func AlignDown[I constraints.Unsigned](value, align I) I {
	return value &^ (align - 1)
}

// AlignUp rounds value up to a multiple of align, a power of two.
func AlignUp[I constraints.Unsigned](value, align I) I {
	return (value + align - 1) &^ (align - 1)
}

// AddOverflows reports if a + b does not fit in I.
func AddOverflows[I constraints.Unsigned](a, b I) bool {
	return a+b < a
}
