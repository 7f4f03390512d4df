// SPDX-License-Identifier: MIT

package lattice

// Quality selects the fade curve applied to lattice fractions by the Gradient
// kernel.
type Quality int

const (
	// QualityFast interpolates linearly. The derivative is discontinuous at
	// integer boundaries, which shows as creasing in bump maps.
	QualityFast Quality = iota

	// QualityStd uses the cubic S-curve; the second derivative is discontinuous
	// at integer boundaries.
	QualityStd

	// QualityBest uses the quintic S-curve; first and second derivatives are
	// continuous everywhere.
	QualityBest
)

// DefaultQuality is the quality of newly created Gradient kernels.
const DefaultQuality = QualityBest

// String returns the quality name.
func (q Quality) String() string {
	switch q {
	case QualityFast:
		return "fast"
	case QualityStd:
		return "std"
	case QualityBest:
		return "best"
	default:
		return "unknown"
	}
}

// ParseQuality maps "fast", "std" or "best" to a Quality.
func ParseQuality(s string) (Quality, bool) {
	switch s {
	case "fast":
		return QualityFast, true
	case "std":
		return QualityStd, true
	case "best":
		return QualityBest, true
	default:
		return DefaultQuality, false
	}
}
