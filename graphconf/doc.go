// Package graphconf describes a module graph and its sampling window in YAML
// and turns the description into a wired, built graph.
//
// A document lists nodes by id; each node names its kind, its sources by id
// in slot order, and any kind-specific settings:
//
//	seed: 1000
//	root: terrain
//	modules:
//	  - {id: base,    kind: billow, frequency: 2}
//	  - {id: peaks,   kind: perlin, octaves: 8}
//	  - {id: ctrl,    kind: perlin, frequency: 0.5, persistence: 0.25}
//	  - {id: terrain, kind: select, sources: [base, peaks, ctrl], lower: 0, upper: 1000, edge_falloff: 0.125}
//	sample:
//	  shape: plane
//	  width: 256
//	  height: 256
//	  bounds: [0, 4, 0, 4]
//
// Nodes without an explicit seed receive the document seed plus their index
// in the list, so a single number reseeds the whole graph; a document seed of
// 0 leaves them random. Decoding is strict: unknown keys are errors.
package graphconf
