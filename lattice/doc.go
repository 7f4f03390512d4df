// Package lattice implements the seeded coherent-noise kernels that anchor the
// leaves of a module graph.
//
// 🚀 What is a lattice kernel?
//
//	A kernel hashes the integer lattice around a point through a seeded
//	permutation table, assigns each lattice corner a pseudo-random gradient
//	(or value), and smoothly interpolates between the corners. The result is
//	coherent noise: continuous in its input, roughly in [-1, 1].
//
// ✨ Kernels:
//   - Gradient: Perlin-style gradient noise over a unit cube (8 corners).
//   - Simplex: simplex-lattice gradient noise (4 corners per simplex).
//   - ValueNoise3D / IntValueNoise3D: stateless integer hash used for
//     per-cell jitter (Voronoi seed points).
//
// Seeding:
//
//	Permutation tables are derived from a 256-entry reference table with 400
//	pairwise swaps drawn from Rand, a generator bit-compatible with the
//	48-bit LCG of java.util.Random. Seed 0 is the sentinel for "pick a random
//	seed"; every other seed is fully deterministic across platforms.
//
// Concurrency:
//
//	Kernels are immutable after seeding; Evaluate is safe for concurrent use.
//	Rand is NOT safe for concurrent use.
package lattice
