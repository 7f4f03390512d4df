// SPDX-License-Identifier: MIT

package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/lattice"
)

// billowBias is added to the folded octave sum.
const billowBias = 0.5

// Billow is fractal gradient noise with every octave folded by 2|s|-1, which
// turns the zero crossings into creases and gives a puffy, cloud-like field.
type Billow struct {
	sources
	fractal
	kernels []*lattice.Gradient

	// multipliers holds lacunarity^i, fixed at Build.
	multipliers []float64
}

// NewBillow returns an unbuilt Billow generator.
func NewBillow(opts ...FractalOption) *Billow {
	return &Billow{
		sources: newSources(KindBillow.SourceCount()),
		fractal: newFractal(opts),
	}
}

// Kind returns KindBillow.
func (b *Billow) Kind() Kind { return KindBillow }

// Build derives one gradient kernel per octave. A non-zero seed reseeds
// octave i with the i-th Rand value plus one; the configured seed is left
// untouched.
func (b *Billow) Build() {
	seeds := b.octaveSeeds(1)
	kernels := make([]*lattice.Gradient, len(seeds))
	for i, s := range seeds {
		kernels[i] = lattice.NewGradient(s)
		kernels[i].SetQuality(b.quality)
	}
	b.kernels = kernels
	b.multipliers = b.octaveFrequencies()
}

// Built reports whether Build has been called.
func (b *Billow) Built() bool { return b.kernels != nil }

// Evaluate sums the folded octaves at (x, y, z) and adds the bias.
// Panics with ErrNotBuilt before Build.
//
// Complexity: O(octaveCount).
func (b *Billow) Evaluate(x, y, z float64) float64 {
	if b.kernels == nil {
		panic(notBuilt(KindBillow))
	}

	x *= b.frequency
	y *= b.frequency
	z *= b.frequency

	value, amplitude := 0.0, 1.0
	for i, k := range b.kernels {
		m := b.multipliers[i]
		signal := 2*math.Abs(k.Evaluate(x*m, y*m, z*m)) - 1
		value += signal * amplitude
		amplitude *= b.persistence
	}

	return value + billowBias
}

// Clone returns a copy sharing the immutable kernels.
func (b *Billow) Clone() Module {
	c := *b
	c.sources = b.sources.clone()

	return &c
}
