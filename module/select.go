// SPDX-License-Identifier: MIT

package module

import "github.com/katalvlaran/lvnoise/scalar"

// Select outputs source 1 where the control (source 2) lies within
// [LowerBound, UpperBound] and source 0 elsewhere. A positive edge falloff
// replaces each hard boundary with an SCurve3-weighted blend over
// [bound-falloff, bound+falloff].
type Select struct {
	sources
	lower, upper float64
	falloff      float64
}

// NewSelect returns a Select choosing between a and b by control, with
// bounds [-1, 1] and no edge falloff.
func NewSelect(a, b, control Module) *Select {
	return &Select{
		sources: newSources(KindSelect.SourceCount(), a, b, control),
		lower:   DefaultLowerBound,
		upper:   DefaultUpperBound,
	}
}

// Kind returns KindSelect.
func (n *Select) Kind() Kind { return KindSelect }

// LowerBound returns the lower selection bound.
func (n *Select) LowerBound() float64 { return n.lower }

// UpperBound returns the upper selection bound.
func (n *Select) UpperBound() float64 { return n.upper }

// EdgeFalloff returns the effective falloff half-width.
func (n *Select) EdgeFalloff() float64 { return n.falloff }

// SetBounds sets the selection range and re-clamps the edge falloff to half
// the new span. It returns ErrInvalidParameter unless lower < upper.
func (n *Select) SetBounds(lower, upper float64) error {
	if !(lower < upper) {
		return moduleErrorf("Select.SetBounds", ErrInvalidParameter, "lower %v must be below upper %v", lower, upper)
	}
	n.lower, n.upper = lower, upper
	n.SetEdgeFalloff(n.falloff)

	return nil
}

// SetEdgeFalloff sets the blend half-width, clamped so the two bands never
// overlap.
func (n *Select) SetEdgeFalloff(falloff float64) {
	half := (n.upper - n.lower) / 2
	if falloff > half {
		falloff = half
	}
	n.falloff = falloff
}

// Control returns the module bound to the control slot.
func (n *Select) Control() (Module, error) { return n.SourceModule(2) }

// SetControl binds the control slot.
func (n *Select) SetControl(control Module) error { return n.SetSourceModule(2, control) }

// Evaluate picks or blends source 0 and source 1 by the control value.
func (n *Select) Evaluate(x, y, z float64) float64 {
	control := n.slots[2].Evaluate(x, y, z)

	if n.falloff <= 0 {
		if control < n.lower || control > n.upper {
			return n.slots[0].Evaluate(x, y, z)
		}

		return n.slots[1].Evaluate(x, y, z)
	}

	switch {
	case control < n.lower-n.falloff:
		return n.slots[0].Evaluate(x, y, z)
	case control < n.lower+n.falloff:
		alpha := n.bandAlpha(control, n.lower)

		return scalar.Lerp(n.slots[0].Evaluate(x, y, z), n.slots[1].Evaluate(x, y, z), alpha)
	case control < n.upper-n.falloff:
		return n.slots[1].Evaluate(x, y, z)
	case control < n.upper+n.falloff:
		alpha := n.bandAlpha(control, n.upper)

		return scalar.Lerp(n.slots[1].Evaluate(x, y, z), n.slots[0].Evaluate(x, y, z), alpha)
	default:
		return n.slots[0].Evaluate(x, y, z)
	}
}

// bandAlpha maps control within [bound-falloff, bound+falloff] to an
// SCurve3-smoothed weight in [0, 1].
func (n *Select) bandAlpha(control, bound float64) float64 {
	lo, hi := bound-n.falloff, bound+n.falloff

	return scalar.SCurve3((control - lo) / (hi - lo))
}

// Clone returns a copy bound to the same sources.
func (n *Select) Clone() Module {
	c := *n
	c.sources = n.sources.clone()

	return &c
}
