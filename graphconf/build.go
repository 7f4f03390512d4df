// SPDX-License-Identifier: MIT

package graphconf

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/lattice"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisemap"
)

// Graph is a built module graph together with its sampling window.
type Graph struct {
	// Root is the node named by Config.Root.
	Root module.Module
	// Nodes holds every declared node by id.
	Nodes map[string]module.Module

	sample SampleConfig
}

// Build validates the document, instantiates every node with module.New,
// applies its settings, wires sources by id, then builds and validates the
// graph from the root.
//
// Complexity: O(N + S) plus the cost of building the generators.
func (c *Config) Build() (*Graph, error) {
	// 1) Structural checks.
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// 2) Instantiate and configure.
	nodes := make(map[string]module.Module, len(c.Modules))
	for i, n := range c.Modules {
		k, _ := module.ParseKind(n.Kind)
		m, err := module.New(k)
		if err != nil {
			return nil, fmt.Errorf("graphconf: %s: %w", n.ID, err)
		}
		if err = n.apply(m, c.seedFor(i, n)); err != nil {
			return nil, fmt.Errorf("graphconf: %s: %w: %w", n.ID, ErrInvalidConfig, err)
		}
		nodes[n.ID] = m
	}

	// 3) Wire slots in declaration order.
	for _, n := range c.Modules {
		for slot, id := range n.Sources {
			if err := nodes[n.ID].SetSourceModule(slot, nodes[id]); err != nil {
				return nil, fmt.Errorf("graphconf: %s source %d: %w", n.ID, slot, err)
			}
		}
	}

	// 4) Build and check from the root; cycles surface here.
	root := nodes[c.Root]
	if err := module.BuildAll(root); err != nil {
		return nil, fmt.Errorf("graphconf: %w: %w", ErrInvalidConfig, err)
	}
	if err := module.Validate(root); err != nil {
		return nil, fmt.Errorf("graphconf: %w: %w", ErrInvalidConfig, err)
	}

	return &Graph{Root: root, Nodes: nodes, sample: c.Sample}, nil
}

// Node returns the node declared with id.
func (g *Graph) Node(id string) (module.Module, error) {
	m, ok := g.Nodes[id]
	if !ok {
		return nil, fmt.Errorf("graphconf: Node(%q): %w", id, ErrUnknownModule)
	}

	return m, nil
}

// Sample renders the root over the configured window.
func (g *Graph) Sample(opts ...noisemap.BuildOption) (*noisemap.Map, error) {
	s := g.sample
	switch s.Shape {
	case ShapeSphere:
		return noisemap.BuildSphere(g.Root, s.Width, s.Height, s.sphereBounds(), opts...)
	case ShapeCylinder:
		return noisemap.BuildCylinder(g.Root, s.Width, s.Height, s.cylinderBounds(), opts...)
	default:
		opts = append([]noisemap.BuildOption{noisemap.WithSeamless(s.Seamless)}, opts...)

		return noisemap.BuildPlane(g.Root, s.Width, s.Height, s.planeBounds(), opts...)
	}
}

// SampleConfig returns the sampling window the graph was built with.
func (g *Graph) SampleConfig() SampleConfig { return g.sample }

// seedFor returns the seed for the i-th node: its own seed if set, else the
// document seed offset by i, else the random sentinel. An offset counting up
// from a negative document seed steps over the sentinel, so a non-zero
// document seed never yields a random node.
func (c *Config) seedFor(i int, n NodeConfig) int32 {
	switch {
	case n.Seed != nil:
		return *n.Seed
	case c.Seed == lattice.RandomSeed:
		return lattice.RandomSeed
	default:
		s := c.Seed + int32(i)
		if c.Seed < 0 && s >= 0 {
			s++
		}

		return s
	}
}

// fractalNode is the setter surface shared by the fractal generators.
type fractalNode interface {
	SetSeed(int32)
	SetFrequency(float64)
	SetLacunarity(float64)
	SetPersistence(float64)
	SetOctaveCount(int)
}

// apply copies the settings of n onto m. The node is freshly created by
// module.New for n.Kind, and n has passed validate.
func (n NodeConfig) apply(m module.Module, seed int32) error {
	switch node := m.(type) {
	case *module.Perlin:
		n.applyFractal(node, seed)
		n.applyQuality(node.SetQuality)
	case *module.Billow:
		n.applyFractal(node, seed)
		n.applyQuality(node.SetQuality)
	case *module.Simplex:
		n.applyFractal(node, seed)
	case *module.OpenSimplex:
		n.applyFractal(node, seed)
	case *module.Const:
		setFloat(n.Value, node.SetValue)
	case *module.Spheres:
		setFloat(n.Frequency, node.SetFrequency)
	case *module.Voronoi:
		node.SetSeed(seed)
		setFloat(n.Frequency, node.SetFrequency)
		setFloat(n.Displacement, node.SetDisplacement)
		if n.Distance != nil {
			node.EnableDistance(*n.Distance)
		}
	case *module.Clamp:
		return node.SetBounds(n.bounds())
	case *module.Select:
		if err := node.SetBounds(n.bounds()); err != nil {
			return err
		}
		setFloat(n.EdgeFalloff, node.SetEdgeFalloff)
	case *module.Exponent:
		setFloat(n.Exponent, node.SetExponent)
	case *module.ScalePoint:
		if x, y, z, ok := triple(n.Scale); ok {
			node.SetScale(x, y, z)
		}
	case *module.TranslatePoint:
		if x, y, z, ok := triple(n.Translate); ok {
			node.SetTranslation(x, y, z)
		}
	case *module.RotatePoint:
		if x, y, z, ok := triple(n.Rotate); ok {
			node.SetAngles(x, y, z)
		}
	case *module.Turbulence:
		node.SetSeed(seed)
		setFloat(n.Frequency, node.SetFrequency)
		setFloat(n.Power, node.SetPower)
		if n.Roughness != nil {
			node.SetRoughness(*n.Roughness)
		}
	}

	return nil
}

func (n NodeConfig) applyFractal(node fractalNode, seed int32) {
	node.SetSeed(seed)
	setFloat(n.Frequency, node.SetFrequency)
	setFloat(n.Lacunarity, node.SetLacunarity)
	setFloat(n.Persistence, node.SetPersistence)
	if n.Octaves != nil {
		node.SetOctaveCount(*n.Octaves)
	}
}

func (n NodeConfig) applyQuality(set func(lattice.Quality)) {
	if q, ok := lattice.ParseQuality(n.Quality); ok {
		set(q)
	}
}

// bounds resolves lower/upper against the module defaults.
func (n NodeConfig) bounds() (lower, upper float64) {
	lower, upper = module.DefaultLowerBound, module.DefaultUpperBound
	if n.Lower != nil {
		lower = *n.Lower
	}
	if n.Upper != nil {
		upper = *n.Upper
	}

	return lower, upper
}

func setFloat(p *float64, set func(float64)) {
	if p != nil {
		set(*p)
	}
}

// triple expands a 1- or 3-element vector; ok is false when v is unset.
func triple(v []float64) (x, y, z float64, ok bool) {
	switch len(v) {
	case 1:
		return v[0], v[0], v[0], true
	case 3:
		return v[0], v[1], v[2], true
	default:
		return 0, 0, 0, false
	}
}
