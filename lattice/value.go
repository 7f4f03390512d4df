// SPDX-License-Identifier: MIT

package lattice

// Value-noise hash multipliers.
const (
	xNoiseGen    int32 = 1619
	yNoiseGen    int32 = 31337
	zNoiseGen    int32 = 6971
	seedNoiseGen int32 = 1013
)

// IntValueNoise3D hashes an integer lattice point and seed into [0, 2^31).
// All arithmetic wraps at 32 bits so results match across platforms.
//
// Complexity: O(1).
func IntValueNoise3D(x, y, z, seed int32) int32 {
	n := (xNoiseGen*x + yNoiseGen*y + zNoiseGen*z + seedNoiseGen*seed) & 0x7fffffff
	n = (n >> 13) ^ n

	return (n*(n*n*60493+19990303) + 1376312589) & 0x7fffffff
}

// ValueNoise3D maps IntValueNoise3D onto [-1, 1].
func ValueNoise3D(x, y, z, seed int32) float64 {
	return 1.0 - float64(IntValueNoise3D(x, y, z, seed))/1073741824.0
}
