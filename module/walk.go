// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// walk.go: depth-first traversal of a module graph with three-colour marking.
//
// Validate and BuildAll share one walker. Each reachable node is visited once
// even when several parents share it, and a source that is still on the
// current path (Gray) is a back edge, i.e. a cycle.
//
// Complexity:
//
//   - Time:   O(V + E)  (V=#reachable nodes, E=#bound slots)
//   - Memory: O(V)      (colour map + recursion stack)

package module

import (
	"fmt"
	"strings"
)

// Visitation colours.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// walker carries traversal state for one Validate or BuildAll call.
type walker struct {
	state map[Module]int
	path  []string

	// strict reports unbound slots instead of skipping them.
	strict bool
	// visit is applied to every node in post-order; nil for none.
	visit func(m Module, path string) error
}

// Validate checks that every node reachable from root is ready to evaluate:
// every source slot is bound, every Builder is built, and no node is its own
// ancestor. The first violation is returned wrapping ErrNoModule, ErrNotBuilt
// or ErrCycle, with the slot path from root (e.g. "select/[2]perlin").
//
// Nodes must be comparable; every node of this package is a pointer.
func Validate(root Module) error {
	w := walker{
		state:  make(map[Module]int),
		strict: true,
		visit: func(m Module, path string) error {
			if b, ok := m.(Builder); ok && !b.Built() {
				return fmt.Errorf("module: Validate: %s: %w", path, ErrNotBuilt)
			}

			return nil
		},
	}

	return w.run(root)
}

// BuildAll calls Build exactly once on every Builder reachable from root.
// Unbound slots are skipped; a cycle aborts with ErrCycle before any node on
// it is built.
func BuildAll(root Module) error {
	w := walker{
		state: make(map[Module]int),
		visit: func(m Module, _ string) error {
			if b, ok := m.(Builder); ok {
				b.Build()
			}

			return nil
		},
	}

	return w.run(root)
}

func (w *walker) run(root Module) error {
	// 1) A missing root is an unbound slot of the caller.
	if root == nil {
		return fmt.Errorf("module: walk: root: %w", ErrNoModule)
	}

	// 2) Depth-first from the root.
	return w.dfs(root, kindLabel(root))
}

// dfs explores m, whose label on the current path is label.
func (w *walker) dfs(m Module, label string) error {
	// 1) Mark Gray and push onto the path.
	w.state[m] = gray
	w.path = append(w.path, label)

	// 2) Inspect each slot in index order.
	for i := 0; i < m.SourceModuleCount(); i++ {
		src, err := m.SourceModule(i)
		if err != nil {
			if w.strict {
				return fmt.Errorf("module: Validate: %s/[%d]: %w", w.pathString(), i, ErrNoModule)
			}
			continue
		}

		switch w.state[src] {
		case white:
			// 2a) Unvisited: recurse.
			if err = w.dfs(src, fmt.Sprintf("[%d]%s", i, kindLabel(src))); err != nil {
				return err
			}
		case gray:
			// 2b) Back edge: src is an ancestor of m.
			return fmt.Errorf("module: walk: %s/[%d]%s: %w", w.pathString(), i, kindLabel(src), ErrCycle)
		}
		// Black: shared subtree already handled.
	}

	// 3) Post-order action, then pop and mark Black.
	if w.visit != nil {
		if err := w.visit(m, w.pathString()); err != nil {
			return err
		}
	}
	w.path = w.path[:len(w.path)-1]
	w.state[m] = black

	return nil
}

func (w *walker) pathString() string { return strings.Join(w.path, "/") }
