// Package lvnoise is a toolkit for coherent noise: build a graph of small
// modules, evaluate it at any 3-D point, and sample it into height maps.
//
// 🚀 What is lvnoise?
//
//	A pure-Go graph of composable noise modules:
//		• Generators: Const, Checkerboard, Spheres, Perlin, Billow, Simplex, OpenSimplex, Voronoi
//		• Modifiers: Invert, Clamp, Exponent, Cached
//		• Transformers: ScalePoint, TranslatePoint, RotatePoint, Turbulence
//		• Combiners: Max, Blend, Select
//		• Graph tools: Validate, BuildAll, CloneGraph, a Kind registry
//		• Sampling: plane, sphere and cylinder noise maps (seamless planes too)
//		• Config: YAML graph documents and the noisegraph CLI
//
// ✨ Why choose lvnoise?
//
//   - Deterministic – same seed, same graph, same value on every machine
//   - Explicit lifecycle – configure, Build, then Evaluate
//   - Safe composition – graph validation reports the exact path of a fault
//   - Concurrency by cloning – CloneGraph gives each worker its own caches
//
// Under the hood, everything is organized under these subpackages:
//
//	scalar/         interpolation curves, clamping and range folding
//	lattice/        seeded permutation tables, gradient and simplex kernels
//	module/         the Module interface, every node kind, Validate/BuildAll/CloneGraph
//	noisemap/       2-D sample grids and the plane/sphere/cylinder builders
//	graphconf/      YAML graph documents (load, validate, build, sample)
//	cmd/noisegraph  command-line sampler writing CSV
//
// Quick start:
//
//	p := module.NewPerlin(module.WithSeed(42))
//	root := module.NewClamp(p)
//	if err := module.BuildAll(root); err != nil { … }
//	v := root.Evaluate(0.3, 1.7, -2.2)
//
// See examples/ for end-to-end scenarios.
package lvnoise
