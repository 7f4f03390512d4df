// SPDX-License-Identifier: MIT

package module

import "github.com/katalvlaran/lvnoise/lattice"

// Perlin is fractal gradient noise: the sum of OctaveCount gradient kernels,
// octave i sampled at frequency·lacunarity^i and weighted by persistence^i.
//
// With the default persistence the output mostly stays within [-1, 1] but is
// not bounded by it. Call Build after construction and after changing seed,
// octave count, lacunarity or quality.
type Perlin struct {
	sources
	fractal
	kernels []*lattice.Gradient

	// multipliers holds lacunarity^i, fixed at Build.
	multipliers []float64
}

// NewPerlin returns an unbuilt Perlin generator.
func NewPerlin(opts ...FractalOption) *Perlin {
	return &Perlin{
		sources: newSources(KindPerlin.SourceCount()),
		fractal: newFractal(opts),
	}
}

// Kind returns KindPerlin.
func (p *Perlin) Kind() Kind { return KindPerlin }

// Build derives one gradient kernel per octave. A non-zero seed reseeds
// octave i with the i-th value of a Rand seeded by it.
//
// Complexity: O(octaveCount) table builds.
func (p *Perlin) Build() {
	seeds := p.octaveSeeds(0)
	kernels := make([]*lattice.Gradient, len(seeds))
	for i, s := range seeds {
		kernels[i] = lattice.NewGradient(s)
		kernels[i].SetQuality(p.quality)
	}
	p.kernels = kernels
	p.multipliers = p.octaveFrequencies()
}

// Built reports whether Build has been called.
func (p *Perlin) Built() bool { return p.kernels != nil }

// Evaluate sums the octaves at (x, y, z). Panics with ErrNotBuilt before Build.
//
// Complexity: O(octaveCount).
func (p *Perlin) Evaluate(x, y, z float64) float64 {
	if p.kernels == nil {
		panic(notBuilt(KindPerlin))
	}

	x *= p.frequency
	y *= p.frequency
	z *= p.frequency

	value, amplitude := 0.0, 1.0
	for i, k := range p.kernels {
		m := p.multipliers[i]
		value += k.Evaluate(x*m, y*m, z*m) * amplitude
		amplitude *= p.persistence
	}

	return value
}

// Clone returns a copy sharing the immutable kernels.
func (p *Perlin) Clone() Module {
	c := *p
	c.sources = p.sources.clone()

	return &c
}
