// SPDX-License-Identifier: MIT

package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/lattice"
)

// Simplex is fractal simplex noise. Per-octave frequencies
// (frequency·lacunarity^i) and amplitudes (persistence^i) are fixed by Build,
// so every configuration change, persistence included, needs a rebuild.
type Simplex struct {
	sources
	fractal
	kernels     []*lattice.Simplex
	frequencies []float64
	amplitudes  []float64
}

// NewSimplex returns an unbuilt Simplex generator.
func NewSimplex(opts ...FractalOption) *Simplex {
	return &Simplex{
		sources: newSources(KindSimplex.SourceCount()),
		fractal: newFractal(opts),
	}
}

// Kind returns KindSimplex.
func (s *Simplex) Kind() Kind { return KindSimplex }

// Build derives the octave kernels and their frequency and amplitude tables.
func (s *Simplex) Build() {
	seeds := s.octaveSeeds(0)
	s.frequencies = s.octaveFrequencies()
	s.amplitudes = make([]float64, len(seeds))
	kernels := make([]*lattice.Simplex, len(seeds))
	for i, seed := range seeds {
		kernels[i] = lattice.NewSimplex(seed)
		s.frequencies[i] *= s.frequency
		s.amplitudes[i] = math.Pow(s.persistence, float64(i))
	}
	s.kernels = kernels
}

// Built reports whether Build has been called.
func (s *Simplex) Built() bool { return s.kernels != nil }

// Evaluate sums the weighted octaves. Panics with ErrNotBuilt before Build.
func (s *Simplex) Evaluate(x, y, z float64) float64 {
	if s.kernels == nil {
		panic(notBuilt(KindSimplex))
	}

	var value float64
	for i, k := range s.kernels {
		f := s.frequencies[i]
		value += k.Evaluate(x*f, y*f, z*f) * s.amplitudes[i]
	}

	return value
}

// Clone returns a copy sharing kernels and octave tables.
func (s *Simplex) Clone() Module {
	c := *s
	c.sources = s.sources.clone()

	return &c
}
