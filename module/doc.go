// Package module builds coherent-noise fields by composing small scalar
// functions over R³ into a directed acyclic graph.
//
// 🚀 What is a module graph?
//
//	Every node ("module") implements Evaluate(x, y, z) float64. Generators
//	(arity 0) sample a lattice kernel or a closed-form pattern; operators
//	(arity 1..3) pull values from their numbered source slots and combine
//	them. Evaluating the root walks the DAG bottom-up for one query point.
//
// ✨ Node kinds:
//
//	Generators: Const, Checkerboard, Spheres, Perlin, Billow, Simplex,
//	            OpenSimplex, Voronoi
//	Operators:  Invert, Clamp, Exponent, Cached, ScalePoint, TranslatePoint,
//	            RotatePoint, Turbulence (1 source), Max (2), Blend, Select (3)
//
// ⚙️ Usage:
//
//	base := module.NewBillow(module.WithSeed(7), module.WithFrequency(2))
//	peaks := module.NewPerlin(module.WithSeed(8))
//	ctrl := module.NewPerlin(module.WithSeed(9), module.WithFrequency(0.5))
//	terrain := module.NewSelect(base, peaks, ctrl)
//	_ = terrain.SetBounds(0, 1000)
//	terrain.SetEdgeFalloff(0.125)
//
//	if err := module.BuildAll(terrain); err != nil { … }
//	if err := module.Validate(terrain); err != nil { … }
//	h := terrain.Evaluate(1.25, 0, 3.5)
//
// Contracts:
//
//   - Arity is fixed per Kind (see Kind.SourceCount) for the node's lifetime.
//   - Configuration errors (bad slot index, lowerBound >= upperBound) are
//     returned synchronously by the setter that introduced them.
//   - Evaluate never checks bindings. Evaluating a node with an unbound slot
//     faults with a nil-interface panic, and evaluating a Builder before Build
//     panics with an error wrapping ErrNotBuilt. Validate reports both ahead
//     of time.
//   - Sources are shared references; the same node may feed many parents.
//     Cycles are undefined behaviour for Evaluate (Validate detects them).
//
// Concurrency:
//
//	A graph is single-writer: Cached mutates itself on every Evaluate, and
//	setters are not synchronized with evaluation. For parallel sampling give
//	each goroutine its own copy via CloneGraph; lattice kernels are immutable
//	and shared between clones.
package module
