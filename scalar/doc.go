// Package scalar provides the small numeric primitives shared by every noise
// kernel and module: linear and cubic interpolation, S-curve easing, clamping
// and the 32-bit range folding applied before integer lattice lookups.
//
// Every function here is pure, allocation-free and safe for concurrent use.
//
// ⚙️ Usage:
//
//	a := scalar.SCurve3(fx)               // ease a lattice fraction
//	v := scalar.Lerp(n0, n1, a)           // blend two corner values
//	x = scalar.MakeInt32Range(x)          // keep int32 casts platform-stable
package scalar
