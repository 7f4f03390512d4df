// SPDX-License-Identifier: MIT

package lattice

import "math/rand/v2"

// LCG constants of java.util.Random.
const (
	lcgMultiplier uint64 = 0x5DEECE66D
	lcgAddend     uint64 = 0xB
	lcgMask       uint64 = (1 << 48) - 1
)

// Rand is a 48-bit linear congruential generator producing the exact stream of
// java.util.Random for a given seed. Permutation shuffles and per-octave
// reseeding draw from it so that a seed yields the same noise everywhere.
//
// Rand is not goroutine-safe.
type Rand struct {
	state uint64
}

// NewRand returns a generator seeded with seed.
//
// Complexity: O(1).
func NewRand(seed int64) *Rand {
	return &Rand{state: (uint64(seed) ^ lcgMultiplier) & lcgMask}
}

// next advances the generator and returns its top bits (1..32).
func (r *Rand) next(bits uint) int32 {
	r.state = (r.state*lcgMultiplier + lcgAddend) & lcgMask

	return int32(uint32(r.state >> (48 - bits)))
}

// NextInt returns the next pseudo-random int32 over the full range.
func (r *Rand) NextInt() int32 {
	return r.next(32)
}

// NextIntn returns a pseudo-random int32 in [0, bound).
// It panics if bound <= 0.
//
// Complexity: O(1) expected; the rejection loop retries with probability < 1/2.
func (r *Rand) NextIntn(bound int32) int32 {
	if bound <= 0 {
		panic("lattice: NextIntn bound must be positive")
	}

	// Power of two: take the high bits directly.
	if bound&(bound-1) == 0 {
		return int32((int64(bound) * int64(r.next(31))) >> 31)
	}

	// Reject the tail that would bias the remainder; int32 wrap is intended.
	m := bound - 1
	u := r.next(31)
	for {
		v := u % bound
		if u-v+m >= 0 {
			return v
		}
		u = r.next(31)
	}
}

// ResolveSeed returns seed unchanged, or a freshly drawn non-deterministic
// seed when seed is the RandomSeed sentinel.
func ResolveSeed(seed int32) int32 {
	if seed != RandomSeed {
		return seed
	}

	return rand.Int32()
}
