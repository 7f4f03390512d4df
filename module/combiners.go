// SPDX-License-Identifier: MIT

package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/scalar"
)

// Max outputs the larger of its two sources.
type Max struct {
	sources
}

// NewMax returns a Max over a and b.
func NewMax(a, b Module) *Max {
	return &Max{sources: newSources(KindMax.SourceCount(), a, b)}
}

// Kind returns KindMax.
func (n *Max) Kind() Kind { return KindMax }

// Evaluate returns max(source0, source1).
func (n *Max) Evaluate(x, y, z float64) float64 {
	return math.Max(n.slots[0].Evaluate(x, y, z), n.slots[1].Evaluate(x, y, z))
}

// Clone returns a copy bound to the same sources.
func (n *Max) Clone() Module {
	return &Max{sources: n.sources.clone()}
}

// Blend interpolates between source 0 and source 1, weighted by the control
// (source 2) remapped from [-1, 1] to [0, 1].
type Blend struct {
	sources
}

// NewBlend returns a Blend of a and b driven by control.
func NewBlend(a, b, control Module) *Blend {
	return &Blend{sources: newSources(KindBlend.SourceCount(), a, b, control)}
}

// Kind returns KindBlend.
func (n *Blend) Kind() Kind { return KindBlend }

// Evaluate returns Lerp(source0, source1, (control+1)/2).
func (n *Blend) Evaluate(x, y, z float64) float64 {
	v0 := n.slots[0].Evaluate(x, y, z)
	v1 := n.slots[1].Evaluate(x, y, z)
	alpha := (n.slots[2].Evaluate(x, y, z) + 1) / 2

	return scalar.Lerp(v0, v1, alpha)
}

// Clone returns a copy bound to the same sources.
func (n *Blend) Clone() Module {
	return &Blend{sources: n.sources.clone()}
}
