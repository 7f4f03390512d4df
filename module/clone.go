// SPDX-License-Identifier: MIT

package module

import "fmt"

// CloneGraph deep-copies the graph reachable from root. Each original node
// is copied exactly once, so shared subtrees stay shared in the copy, and
// Cached nodes start empty. Built lattice kernels are immutable and shared
// with the original, so a clone is ready to evaluate without Build.
//
// The copy is independent for configuration and caching, which makes one
// clone per goroutine the way to sample a graph in parallel. Unbound slots
// stay unbound. Returns ErrCycle for cyclic graphs and ErrNotCloneable for
// nodes that do not implement Cloner.
//
// Complexity: O(V + E).
func CloneGraph(root Module) (Module, error) {
	if root == nil {
		return nil, fmt.Errorf("module: CloneGraph: root: %w", ErrNoModule)
	}
	c := cloner{
		copies: make(map[Module]Module),
		state:  make(map[Module]int),
	}

	return c.clone(root)
}

type cloner struct {
	copies map[Module]Module
	state  map[Module]int
}

func (c *cloner) clone(m Module) (Module, error) {
	// 1) Reuse the copy of a shared node; a Gray node is an ancestor.
	switch c.state[m] {
	case black:
		return c.copies[m], nil
	case gray:
		return nil, fmt.Errorf("module: CloneGraph: %s: %w", kindLabel(m), ErrCycle)
	}

	cl, ok := m.(Cloner)
	if !ok {
		return nil, fmt.Errorf("module: CloneGraph: %T: %w", m, ErrNotCloneable)
	}
	c.state[m] = gray

	// 2) Shallow copy, then rebind every bound slot to its clone.
	cp := cl.Clone()
	for i := 0; i < m.SourceModuleCount(); i++ {
		src, err := m.SourceModule(i)
		if err != nil {
			continue
		}
		srcCopy, err := c.clone(src)
		if err != nil {
			return nil, err
		}
		if err = cp.SetSourceModule(i, srcCopy); err != nil {
			return nil, fmt.Errorf("module: CloneGraph: %s/[%d]: %w", kindLabel(m), i, err)
		}
	}

	// 3) Done.
	c.state[m] = black
	c.copies[m] = cp

	return cp, nil
}
