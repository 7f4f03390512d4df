// SPDX-License-Identifier: MIT

package scalar

import (
	"cmp"
	"math"
)

// int32Span is 2^30, the half-range used when folding doubles into int32 space.
const int32Span = 1073741824.0

// ClampValue clamps v onto [lo, hi]. The caller guarantees lo <= hi.
func ClampValue[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// MakeInt32Range folds n so that it can be truncated to an int32 with the same
// result on every platform.
//
// Values inside (-2^30, 2^30) are returned unchanged. Values outside are
// folded with the truncated (sign-preserving) remainder, so 2^30 maps to -2^30.
//
// Complexity: O(1).
func MakeInt32Range(n float64) float64 {
	switch {
	case n >= int32Span:
		return (2.0 * math.Mod(n, int32Span)) - int32Span
	case n <= -int32Span:
		return (2.0 * math.Mod(n, int32Span)) + int32Span
	default:
		return n
	}
}
