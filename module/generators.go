// SPDX-License-Identifier: MIT

package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/scalar"
)

// Const outputs the same value everywhere.
type Const struct {
	sources
	value float64
}

// NewConst returns a Const producing value.
func NewConst(value float64) *Const {
	return &Const{sources: newSources(KindConst.SourceCount()), value: value}
}

// Kind returns KindConst.
func (c *Const) Kind() Kind { return KindConst }

// Value returns the constant.
func (c *Const) Value() float64 { return c.value }

// SetValue sets the constant.
func (c *Const) SetValue(v float64) { c.value = v }

// Evaluate returns the constant.
func (c *Const) Evaluate(_, _, _ float64) float64 { return c.value }

// Clone returns a copy.
func (c *Const) Clone() Module {
	cp := *c
	cp.sources = c.sources.clone()

	return &cp
}

// Checkerboard outputs alternating unit cubes of -1 and +1.
type Checkerboard struct {
	sources
}

// NewCheckerboard returns a Checkerboard.
func NewCheckerboard() *Checkerboard {
	return &Checkerboard{sources: newSources(KindCheckerboard.SourceCount())}
}

// Kind returns KindCheckerboard.
func (c *Checkerboard) Kind() Kind { return KindCheckerboard }

// Evaluate folds the point into the int32-safe range, floors each axis and
// returns -1 when the cell coordinates have odd parity, +1 otherwise.
func (c *Checkerboard) Evaluate(x, y, z float64) float64 {
	ix := int64(math.Floor(scalar.MakeInt32Range(x)))
	iy := int64(math.Floor(scalar.MakeInt32Range(y)))
	iz := int64(math.Floor(scalar.MakeInt32Range(z)))
	if (ix^iy^iz)&1 != 0 {
		return -1
	}

	return 1
}

// Clone returns a copy.
func (c *Checkerboard) Clone() Module {
	return &Checkerboard{sources: c.sources.clone()}
}

// Spheres outputs concentric shells around the origin: +1 on each sphere of
// integer radius (scaled by frequency), -1 halfway between them.
type Spheres struct {
	sources
	frequency float64
}

// NewSpheres returns Spheres with frequency 1.
func NewSpheres() *Spheres {
	return &Spheres{sources: newSources(KindSpheres.SourceCount()), frequency: DefaultFrequency}
}

// Kind returns KindSpheres.
func (s *Spheres) Kind() Kind { return KindSpheres }

// Frequency returns the shell density.
func (s *Spheres) Frequency() float64 { return s.frequency }

// SetFrequency sets the shell density.
func (s *Spheres) SetFrequency(f float64) { s.frequency = f }

// Evaluate returns 1 - 4·min(frac(d), 1-frac(d)) for the scaled distance d.
func (s *Spheres) Evaluate(x, y, z float64) float64 {
	x *= s.frequency
	y *= s.frequency
	z *= s.frequency

	d := math.Sqrt(x*x + y*y + z*z)
	small := d - math.Floor(d)
	large := 1 - small

	return 1 - 4*math.Min(small, large)
}

// Clone returns a copy.
func (s *Spheres) Clone() Module {
	cp := *s
	cp.sources = s.sources.clone()

	return &cp
}
