// SPDX-License-Identifier: MIT

package scalar

// Lerp performs linear interpolation between n0 and n1.
//
// An alpha of 0 returns n0 and an alpha of 1 returns n1; alpha is not clamped.
//
// Complexity: O(1).
func Lerp(n0, n1, alpha float64) float64 {
	return ((1.0 - alpha) * n0) + (alpha * n1)
}

// CubicInterp performs cubic interpolation between n1 and n2, using n0 and n3
// (the values before n1 and after n2) to shape the tangents.
//
// An alpha of 0 returns n1 and an alpha of 1 returns n2.
//
// Complexity: O(1).
func CubicInterp(n0, n1, n2, n3, alpha float64) float64 {
	p := (n3 - n2) - (n0 - n1)
	q := (n0 - n1) - p
	r := n2 - n0
	s := n1

	return p*alpha*alpha*alpha + q*alpha*alpha + r*alpha + s
}

// SCurve3 maps a onto a cubic S-curve. The first derivative is zero at
// a = 0 and a = 1.
func SCurve3(a float64) float64 {
	return a * a * (3.0 - 2.0*a)
}

// SCurve5 maps a onto a quintic S-curve. The first and second derivatives are
// zero at a = 0 and a = 1.
func SCurve5(a float64) float64 {
	return a * a * a * (a*(a*6.0-15.0) + 10.0)
}
