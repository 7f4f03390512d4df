// SPDX-License-Identifier: MIT

package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/lattice"
)

// fractal is the octave configuration embedded by Perlin, Billow, Simplex and
// OpenSimplex. Its setters are promoted onto those nodes.
type fractal struct {
	frequency   float64
	lacunarity  float64
	persistence float64
	octaveCount int
	seed        int32
	quality     lattice.Quality
}

func newFractal(opts []FractalOption) fractal {
	c := fractal{
		frequency:   DefaultFrequency,
		lacunarity:  DefaultLacunarity,
		persistence: DefaultPersistence,
		octaveCount: DefaultOctaveCount,
		seed:        DefaultSeed,
		quality:     lattice.DefaultQuality,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Frequency returns the first-octave frequency.
func (c *fractal) Frequency() float64 { return c.frequency }

// SetFrequency sets the first-octave frequency. Rebuild afterwards.
func (c *fractal) SetFrequency(f float64) { c.frequency = f }

// Lacunarity returns the per-octave frequency multiplier.
func (c *fractal) Lacunarity() float64 { return c.lacunarity }

// SetLacunarity sets the per-octave frequency multiplier. Rebuild afterwards.
func (c *fractal) SetLacunarity(l float64) { c.lacunarity = l }

// Persistence returns the per-octave amplitude multiplier.
func (c *fractal) Persistence() float64 { return c.persistence }

// SetPersistence sets the per-octave amplitude multiplier.
func (c *fractal) SetPersistence(p float64) { c.persistence = p }

// OctaveCount returns the number of octaves.
func (c *fractal) OctaveCount() int { return c.octaveCount }

// SetOctaveCount sets the number of octaves, clamped into [1, MaxOctaveCount].
// Rebuild afterwards.
func (c *fractal) SetOctaveCount(n int) {
	c.octaveCount = min(max(n, 1), MaxOctaveCount)
}

// Seed returns the master seed.
func (c *fractal) Seed() int32 { return c.seed }

// SetSeed sets the master seed. Rebuild afterwards.
func (c *fractal) SetSeed(seed int32) { c.seed = seed }

// Quality returns the gradient fade curve.
func (c *fractal) Quality() lattice.Quality { return c.quality }

// SetQuality sets the gradient fade curve. Rebuild afterwards.
func (c *fractal) SetQuality(q lattice.Quality) { c.quality = q }

// octaveSeeds derives one kernel seed per octave from the master seed.
// A non-zero seed drives a Rand whose successive NextInt values, plus offset,
// seed the octaves; the sentinel seed leaves every octave at RandomSeed.
//
// Complexity: O(octaveCount).
func (c *fractal) octaveSeeds(offset int32) []int32 {
	seeds := make([]int32, c.octaveCount)
	if c.seed == lattice.RandomSeed {
		return seeds
	}
	rnd := lattice.NewRand(int64(c.seed))
	for i := range seeds {
		seeds[i] = rnd.NextInt() + offset
	}

	return seeds
}

// octaveFrequencies returns lacunarity^i for every octave.
func (c *fractal) octaveFrequencies() []float64 {
	out := make([]float64, c.octaveCount)
	for i := range out {
		out[i] = math.Pow(c.lacunarity, float64(i))
	}

	return out
}
