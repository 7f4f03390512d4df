// SPDX-License-Identifier: MIT

package module

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/lvnoise/lattice"
)

// OpenSimplex is fractal OpenSimplex noise backed by opensimplex-go. Octave i
// uses seed+i, so a fixed seed reproduces the field across runs; the sentinel
// seed draws one random base seed at Build.
type OpenSimplex struct {
	sources
	fractal
	kernels     []opensimplex.Noise
	frequencies []float64
	amplitudes  []float64
}

// NewOpenSimplex returns an unbuilt OpenSimplex generator.
func NewOpenSimplex(opts ...FractalOption) *OpenSimplex {
	return &OpenSimplex{
		sources: newSources(KindOpenSimplex.SourceCount()),
		fractal: newFractal(opts),
	}
}

// Kind returns KindOpenSimplex.
func (o *OpenSimplex) Kind() Kind { return KindOpenSimplex }

// Build creates one opensimplex-go generator per octave.
func (o *OpenSimplex) Build() {
	base := int64(lattice.ResolveSeed(o.seed))
	o.frequencies = o.octaveFrequencies()
	o.amplitudes = make([]float64, o.octaveCount)
	kernels := make([]opensimplex.Noise, o.octaveCount)
	for i := range kernels {
		kernels[i] = opensimplex.New(base + int64(i))
		o.frequencies[i] *= o.frequency
		o.amplitudes[i] = math.Pow(o.persistence, float64(i))
	}
	o.kernels = kernels
}

// Built reports whether Build has been called.
func (o *OpenSimplex) Built() bool { return o.kernels != nil }

// Evaluate sums the weighted octaves. Panics with ErrNotBuilt before Build.
func (o *OpenSimplex) Evaluate(x, y, z float64) float64 {
	if o.kernels == nil {
		panic(notBuilt(KindOpenSimplex))
	}

	var value float64
	for i, k := range o.kernels {
		f := o.frequencies[i]
		value += k.Eval3(x*f, y*f, z*f) * o.amplitudes[i]
	}

	return value
}

// Clone returns a copy sharing the octave generators.
func (o *OpenSimplex) Clone() Module {
	c := *o
	c.sources = o.sources.clone()

	return &c
}
