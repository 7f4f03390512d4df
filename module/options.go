// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// options.go: functional options for the fractal generators
// (Perlin, Billow, Simplex, OpenSimplex).
//
// Contract:
//   • Each WithX validates its argument and panics on values that can never
//     produce a meaningful field (NaN, ±Inf).
//   • Octave count is a soft setting: it is clamped into [1, MaxOctaveCount].
//   • Options only configure; call Build before Evaluate.

package module

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnoise/lattice"
)

// Defaults shared by all fractal generators.
const (
	DefaultFrequency   = 1.0
	DefaultLacunarity  = 2.0
	DefaultOctaveCount = 6
	DefaultPersistence = 0.5
	DefaultSeed        = lattice.RandomSeed

	// MaxOctaveCount bounds the number of summed octaves.
	MaxOctaveCount = 30
)

// FractalOption configures a fractal generator at construction time.
type FractalOption func(*fractal)

// WithFrequency sets the frequency of the first octave.
// Panics if f is NaN or infinite.
func WithFrequency(f float64) FractalOption {
	mustFinite("WithFrequency", f)

	return func(c *fractal) { c.frequency = f }
}

// WithLacunarity sets the frequency multiplier between successive octaves.
// Panics if l is NaN or infinite.
func WithLacunarity(l float64) FractalOption {
	mustFinite("WithLacunarity", l)

	return func(c *fractal) { c.lacunarity = l }
}

// WithPersistence sets the amplitude multiplier between successive octaves.
// Panics if p is NaN or infinite.
func WithPersistence(p float64) FractalOption {
	mustFinite("WithPersistence", p)

	return func(c *fractal) { c.persistence = p }
}

// WithOctaveCount sets the number of octaves, clamped into [1, MaxOctaveCount].
func WithOctaveCount(n int) FractalOption {
	return func(c *fractal) { c.SetOctaveCount(n) }
}

// WithSeed sets the master seed. Seed 0 gives every octave a random table.
func WithSeed(seed int32) FractalOption {
	return func(c *fractal) { c.seed = seed }
}

// WithQuality selects the fade curve of gradient-kernel octaves. Simplex and
// OpenSimplex kernels have no fade curve and ignore it.
func WithQuality(q lattice.Quality) FractalOption {
	return func(c *fractal) { c.quality = q }
}

func mustFinite(method string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("module: %s: value must be finite, got %v", method, v))
	}
}
