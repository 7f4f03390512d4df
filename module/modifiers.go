// SPDX-License-Identifier: MIT

package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/scalar"
)

// Default bounds shared by Clamp and Select.
const (
	DefaultLowerBound = -1.0
	DefaultUpperBound = 1.0
)

// DefaultExponent leaves the source unchanged.
const DefaultExponent = 1.0

// Invert negates its source.
type Invert struct {
	sources
}

// NewInvert returns an Invert bound to src (nil leaves the slot unbound).
func NewInvert(src Module) *Invert {
	return &Invert{sources: newSources(KindInvert.SourceCount(), src)}
}

// Kind returns KindInvert.
func (n *Invert) Kind() Kind { return KindInvert }

// Evaluate returns -source(x, y, z).
func (n *Invert) Evaluate(x, y, z float64) float64 {
	return -n.slots[0].Evaluate(x, y, z)
}

// Clone returns a copy bound to the same source.
func (n *Invert) Clone() Module {
	return &Invert{sources: n.sources.clone()}
}

// Clamp limits its source to [LowerBound, UpperBound].
type Clamp struct {
	sources
	lower, upper float64
}

// NewClamp returns a Clamp with bounds [-1, 1].
func NewClamp(src Module) *Clamp {
	return &Clamp{
		sources: newSources(KindClamp.SourceCount(), src),
		lower:   DefaultLowerBound,
		upper:   DefaultUpperBound,
	}
}

// Kind returns KindClamp.
func (n *Clamp) Kind() Kind { return KindClamp }

// LowerBound returns the lower clamp bound.
func (n *Clamp) LowerBound() float64 { return n.lower }

// UpperBound returns the upper clamp bound.
func (n *Clamp) UpperBound() float64 { return n.upper }

// SetBounds sets the clamp range. It returns ErrInvalidParameter unless
// lower < upper, leaving the previous bounds in place.
func (n *Clamp) SetBounds(lower, upper float64) error {
	if !(lower < upper) {
		return moduleErrorf("Clamp.SetBounds", ErrInvalidParameter, "lower %v must be below upper %v", lower, upper)
	}
	n.lower, n.upper = lower, upper

	return nil
}

// Evaluate returns the source value clamped into the bounds.
func (n *Clamp) Evaluate(x, y, z float64) float64 {
	return scalar.ClampValue(n.slots[0].Evaluate(x, y, z), n.lower, n.upper)
}

// Clone returns a copy bound to the same source.
func (n *Clamp) Clone() Module {
	c := *n
	c.sources = n.sources.clone()

	return &c
}

// Exponent reshapes its source by raising the value, remapped to [0, 1], to a
// power and mapping the result back to [-1, 1].
type Exponent struct {
	sources
	exponent float64
}

// NewExponent returns an Exponent with exponent 1.
func NewExponent(src Module) *Exponent {
	return &Exponent{sources: newSources(KindExponent.SourceCount(), src), exponent: DefaultExponent}
}

// Kind returns KindExponent.
func (n *Exponent) Kind() Kind { return KindExponent }

// Exponent returns the power applied.
func (n *Exponent) Exponent() float64 { return n.exponent }

// SetExponent sets the power applied.
func (n *Exponent) SetExponent(e float64) { n.exponent = e }

// Evaluate returns |(v+1)/2|^e·2 - 1 for the source value v.
func (n *Exponent) Evaluate(x, y, z float64) float64 {
	v := n.slots[0].Evaluate(x, y, z)

	return math.Pow(math.Abs((v+1)/2), n.exponent)*2 - 1
}

// Clone returns a copy bound to the same source.
func (n *Exponent) Clone() Module {
	c := *n
	c.sources = n.sources.clone()

	return &c
}
