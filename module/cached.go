// SPDX-License-Identifier: MIT

package module

import "math"

// Cached memoizes the last evaluation of its source. A node shared by several
// parents is then computed once per query point.
//
// Points are compared bit-for-bit, so -0 and +0 are distinct and NaN
// coordinates hit the cache only with an identical NaN payload. Cached
// mutates on every Evaluate and must not be shared between goroutines.
type Cached struct {
	sources
	valid               bool
	xBits, yBits, zBits uint64
	value               float64
}

// NewCached returns a Cached wrapping src.
func NewCached(src Module) *Cached {
	return &Cached{sources: newSources(KindCached.SourceCount(), src)}
}

// Kind returns KindCached.
func (n *Cached) Kind() Kind { return KindCached }

// SetSourceModule binds src and drops the memoized value.
func (n *Cached) SetSourceModule(index int, src Module) error {
	if err := n.sources.SetSourceModule(index, src); err != nil {
		return err
	}
	n.Invalidate()

	return nil
}

// Invalidate drops the memoized value, e.g. after reconfiguring the source.
func (n *Cached) Invalidate() { n.valid = false }

// Evaluate returns the memoized value when (x, y, z) matches the previous
// point, otherwise evaluates the source and remembers the result.
func (n *Cached) Evaluate(x, y, z float64) float64 {
	xb, yb, zb := math.Float64bits(x), math.Float64bits(y), math.Float64bits(z)
	if n.valid && xb == n.xBits && yb == n.yBits && zb == n.zBits {
		return n.value
	}

	n.value = n.slots[0].Evaluate(x, y, z)
	n.xBits, n.yBits, n.zBits = xb, yb, zb
	n.valid = true

	return n.value
}

// Clone returns a copy with an empty cache.
func (n *Cached) Clone() Module {
	return &Cached{sources: n.sources.clone()}
}
