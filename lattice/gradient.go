// SPDX-License-Identifier: MIT

package lattice

import "github.com/katalvlaran/lvnoise/scalar"

// GradientVector is one of the twelve constant corner gradients.
type GradientVector struct {
	X, Y, Z float64
}

// Dot returns the dot product of g with (x, y, z).
func (g GradientVector) Dot(x, y, z float64) float64 {
	return g.X*x + g.Y*y + g.Z*z
}

// Gradients holds the edge midpoints of a cube, indexed by permMod12.
var Gradients = [12]GradientVector{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Gradient is a Perlin-style gradient-noise kernel. Output is exactly zero on
// integer lattice points and stays roughly within [-1, 1] elsewhere.
type Gradient struct {
	table   *Permutation
	quality Quality
}

// NewGradient returns a kernel seeded with seed at DefaultQuality.
// Seed 0 draws a random seed.
func NewGradient(seed int32) *Gradient {
	return &Gradient{table: NewPermutation(seed), quality: DefaultQuality}
}

// SetSeed rebuilds the permutation table for seed.
func (g *Gradient) SetSeed(seed int32) { g.table = NewPermutation(seed) }

// Seed returns the effective seed of the permutation table.
func (g *Gradient) Seed() int32 { return g.table.Seed() }

// SetQuality selects the fade curve.
func (g *Gradient) SetQuality(q Quality) { g.quality = q }

// Quality returns the fade curve in use.
func (g *Gradient) Quality() Quality { return g.quality }

// Table exposes the permutation table, mainly for determinism checks.
func (g *Gradient) Table() *Permutation { return g.table }

// fade applies the quality's easing curve to a lattice fraction.
func (g *Gradient) fade(t float64) float64 {
	switch g.quality {
	case QualityFast:
		return t
	case QualityStd:
		return scalar.SCurve3(t)
	default:
		return scalar.SCurve5(t)
	}
}

// Evaluate returns gradient noise at (x, y, z).
//
// Steps: locate the unit cube, hash its eight corners into gradient indices,
// dot each gradient with the corner-relative offset, fade the local fractions
// and interpolate along x, then y, then z.
//
// Complexity: O(1).
func (g *Gradient) Evaluate(x, y, z float64) float64 {
	// 1) Unit cube origin and local fractions.
	x0, y0, z0 := fastFloor(x), fastFloor(y), fastFloor(z)
	x -= float64(x0)
	y -= float64(y0)
	z -= float64(z0)

	// 2) Wrap cube coordinates into the table.
	x0 &= tableSize - 1
	y0 &= tableSize - 1
	z0 &= tableSize - 1

	// 3) Corner gradient indices.
	t := g.table
	gi000 := t.hash(x0, y0, z0)
	gi001 := t.hash(x0, y0, z0+1)
	gi010 := t.hash(x0, y0+1, z0)
	gi011 := t.hash(x0, y0+1, z0+1)
	gi100 := t.hash(x0+1, y0, z0)
	gi101 := t.hash(x0+1, y0, z0+1)
	gi110 := t.hash(x0+1, y0+1, z0)
	gi111 := t.hash(x0+1, y0+1, z0+1)

	// 4) Corner contributions.
	n000 := Gradients[gi000].Dot(x, y, z)
	n100 := Gradients[gi100].Dot(x-1, y, z)
	n010 := Gradients[gi010].Dot(x, y-1, z)
	n110 := Gradients[gi110].Dot(x-1, y-1, z)
	n001 := Gradients[gi001].Dot(x, y, z-1)
	n101 := Gradients[gi101].Dot(x-1, y, z-1)
	n011 := Gradients[gi011].Dot(x, y-1, z-1)
	n111 := Gradients[gi111].Dot(x-1, y-1, z-1)

	// 5) Fade and trilinear blend.
	xs, ys, zs := g.fade(x), g.fade(y), g.fade(z)

	nx00 := scalar.Lerp(n000, n100, xs)
	nx01 := scalar.Lerp(n001, n101, xs)
	nx10 := scalar.Lerp(n010, n110, xs)
	nx11 := scalar.Lerp(n011, n111, xs)

	nxy0 := scalar.Lerp(nx00, nx10, ys)
	nxy1 := scalar.Lerp(nx01, nx11, ys)

	return scalar.Lerp(nxy0, nxy1, zs)
}

// fastFloor truncates then corrects negatives; faster than math.Floor.
func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}

	return xi
}
