// SPDX-License-Identifier: MIT

package module

import "slices"

// Module is a node of the noise graph.
//
// Evaluate returns the node's output at (x, y, z). The source-slot methods
// bind and inspect the numbered inputs; the slot count never changes.
type Module interface {
	// Evaluate computes the output value. All required sources must be bound
	// and, for Builders, Build must have been called.
	Evaluate(x, y, z float64) float64

	// SourceModuleCount returns the fixed number of source slots.
	SourceModuleCount() int

	// SourceModule returns the module bound to slot index, or ErrNoModule.
	SourceModule(index int) (Module, error)

	// SetSourceModule binds src to slot index, replacing any previous module.
	// It returns ErrInvalidParameter for a bad index or a nil src.
	SetSourceModule(index int, src Module) error
}

// Builder is a Module whose internal kernels must be derived from its
// configuration before evaluation. Build must be called again after changing
// seed, octave count, lacunarity or frequency.
type Builder interface {
	Module

	// Build (re)derives kernels and per-octave multipliers.
	Build()

	// Built reports whether Build has been called.
	Built() bool
}

// Cloner is implemented by every node in this package. Clone returns a copy
// with the same configuration and the same source references; CloneGraph
// rebinds the sources to their copies.
type Cloner interface {
	Clone() Module
}

// sources holds the fixed-size slot array shared by every node.
type sources struct {
	slots []Module
}

// newSources allocates count slots and binds the given modules in order;
// nil entries stay unbound.
func newSources(count int, mods ...Module) sources {
	s := sources{slots: make([]Module, count)}
	copy(s.slots, mods)

	return s
}

// SourceModuleCount returns the number of source slots.
func (s *sources) SourceModuleCount() int { return len(s.slots) }

// SourceModule returns the module bound to slot index.
//
// Complexity: O(1).
func (s *sources) SourceModule(index int) (Module, error) {
	if index < 0 || index >= len(s.slots) {
		return nil, moduleErrorf("SourceModule", ErrNoModule, "index %d outside [0,%d)", index, len(s.slots))
	}
	if s.slots[index] == nil {
		return nil, moduleErrorf("SourceModule", ErrNoModule, "slot %d is unbound", index)
	}

	return s.slots[index], nil
}

// SetSourceModule binds src to slot index.
//
// Complexity: O(1).
func (s *sources) SetSourceModule(index int, src Module) error {
	if index < 0 || index >= len(s.slots) {
		return moduleErrorf("SetSourceModule", ErrInvalidParameter, "index %d outside [0,%d)", index, len(s.slots))
	}
	if src == nil {
		return moduleErrorf("SetSourceModule", ErrInvalidParameter, "nil module for slot %d", index)
	}
	s.slots[index] = src

	return nil
}

// clone copies the slot array; the referenced modules are shared.
func (s *sources) clone() sources {
	return sources{slots: slices.Clone(s.slots)}
}
