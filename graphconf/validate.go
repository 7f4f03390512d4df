// SPDX-License-Identifier: MIT

package graphconf

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvnoise/lattice"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisemap"
)

// Field names as they appear in YAML.
const (
	fSeed         = "seed"
	fFrequency    = "frequency"
	fLacunarity   = "lacunarity"
	fPersistence  = "persistence"
	fOctaves      = "octaves"
	fQuality      = "quality"
	fValue        = "value"
	fDisplacement = "displacement"
	fDistance     = "distance"
	fLower        = "lower"
	fUpper        = "upper"
	fEdgeFalloff  = "edge_falloff"
	fExponent     = "exponent"
	fPower        = "power"
	fRoughness    = "roughness"
	fScale        = "scale"
	fTranslate    = "translate"
	fRotate       = "rotate"
)

var fractalFields = []string{fSeed, fFrequency, fLacunarity, fPersistence, fOctaves}

// allowedFields lists the settings each kind accepts.
var allowedFields = map[module.Kind][]string{
	module.KindConst:          {fValue},
	module.KindSpheres:        {fFrequency},
	module.KindPerlin:         append(slices.Clone(fractalFields), fQuality),
	module.KindBillow:         append(slices.Clone(fractalFields), fQuality),
	module.KindSimplex:        fractalFields,
	module.KindOpenSimplex:    fractalFields,
	module.KindVoronoi:        {fSeed, fFrequency, fDisplacement, fDistance},
	module.KindClamp:          {fLower, fUpper},
	module.KindSelect:         {fLower, fUpper, fEdgeFalloff},
	module.KindExponent:       {fExponent},
	module.KindScalePoint:     {fScale},
	module.KindTranslatePoint: {fTranslate},
	module.KindRotatePoint:    {fRotate},
	module.KindTurbulence:     {fSeed, fFrequency, fPower, fRoughness},
}

// Validate checks the document without building anything: unique non-empty
// ids, known kinds, source counts matching each kind's arity, resolvable
// references, settings accepted by each kind, a root from which every node
// is reachable, and a usable sampling window.
//
// Complexity: O(N + S) for N nodes and S source references.
func (c *Config) Validate() error {
	// 1) Ids and kinds.
	index := make(map[string]int, len(c.Modules))
	for i, n := range c.Modules {
		if n.ID == "" {
			return fmt.Errorf("graphconf: modules[%d]: empty id: %w", i, ErrInvalidConfig)
		}
		if _, dup := index[n.ID]; dup {
			return fmt.Errorf("graphconf: duplicate id %q: %w", n.ID, ErrInvalidConfig)
		}
		index[n.ID] = i
		if err := n.validate(); err != nil {
			return err
		}
	}

	// 2) References.
	for _, n := range c.Modules {
		for slot, id := range n.Sources {
			if _, ok := index[id]; !ok {
				return fmt.Errorf("graphconf: %s source %d: %q: %w", n.ID, slot, id, ErrUnknownModule)
			}
		}
	}
	if c.Root == "" {
		return fmt.Errorf("graphconf: root not set: %w", ErrInvalidConfig)
	}
	if _, ok := index[c.Root]; !ok {
		return fmt.Errorf("graphconf: root %q: %w", c.Root, ErrUnknownModule)
	}

	// 3) Every node feeds the root.
	reached := make(map[string]bool, len(c.Modules))
	stack := []string{c.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reached[id] {
			continue
		}
		reached[id] = true
		stack = append(stack, c.Modules[index[id]].Sources...)
	}
	for _, n := range c.Modules {
		if !reached[n.ID] {
			return fmt.Errorf("graphconf: %s is not reachable from root %q: %w", n.ID, c.Root, ErrInvalidConfig)
		}
	}

	// 4) Sampling window.
	return c.Sample.validate()
}

// validate checks one node in isolation.
func (n NodeConfig) validate() error {
	k, err := module.ParseKind(n.Kind)
	if err != nil {
		return fmt.Errorf("graphconf: %s: %w: %w", n.ID, ErrInvalidConfig, err)
	}
	if len(n.Sources) != k.SourceCount() {
		return fmt.Errorf("graphconf: %s: %s takes %d sources, got %d: %w",
			n.ID, k, k.SourceCount(), len(n.Sources), ErrInvalidConfig)
	}

	allowed := allowedFields[k]
	for _, f := range n.setFields() {
		if !slices.Contains(allowed, f) {
			return fmt.Errorf("graphconf: %s: %s does not accept %q: %w", n.ID, k, f, ErrInvalidConfig)
		}
	}

	for name, v := range n.floats() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("graphconf: %s: %s must be finite: %w", n.ID, name, ErrInvalidConfig)
		}
	}
	if n.Quality != "" {
		if _, ok := lattice.ParseQuality(n.Quality); !ok {
			return fmt.Errorf("graphconf: %s: quality %q: %w", n.ID, n.Quality, ErrInvalidConfig)
		}
	}
	if n.Lower != nil || n.Upper != nil {
		lo, hi := module.DefaultLowerBound, module.DefaultUpperBound
		if n.Lower != nil {
			lo = *n.Lower
		}
		if n.Upper != nil {
			hi = *n.Upper
		}
		if !(lo < hi) {
			return fmt.Errorf("graphconf: %s: lower %v must be below upper %v: %w", n.ID, lo, hi, ErrInvalidConfig)
		}
	}
	for name, vec := range map[string][]float64{fScale: n.Scale, fTranslate: n.Translate} {
		if vec != nil && len(vec) != 1 && len(vec) != 3 {
			return fmt.Errorf("graphconf: %s: %s needs 1 or 3 values: %w", n.ID, name, ErrInvalidConfig)
		}
	}
	if n.Rotate != nil && len(n.Rotate) != 3 {
		return fmt.Errorf("graphconf: %s: rotate needs 3 angles: %w", n.ID, ErrInvalidConfig)
	}

	return nil
}

// setFields lists the optional settings present on n.
func (n NodeConfig) setFields() []string {
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(n.Seed != nil, fSeed)
	add(n.Frequency != nil, fFrequency)
	add(n.Lacunarity != nil, fLacunarity)
	add(n.Persistence != nil, fPersistence)
	add(n.Octaves != nil, fOctaves)
	add(n.Quality != "", fQuality)
	add(n.Value != nil, fValue)
	add(n.Displacement != nil, fDisplacement)
	add(n.Distance != nil, fDistance)
	add(n.Lower != nil, fLower)
	add(n.Upper != nil, fUpper)
	add(n.EdgeFalloff != nil, fEdgeFalloff)
	add(n.Exponent != nil, fExponent)
	add(n.Power != nil, fPower)
	add(n.Roughness != nil, fRoughness)
	add(n.Scale != nil, fScale)
	add(n.Translate != nil, fTranslate)
	add(n.Rotate != nil, fRotate)

	return out
}

// floats returns every numeric setting present on n, by name.
func (n NodeConfig) floats() map[string]float64 {
	out := make(map[string]float64)
	for name, p := range map[string]*float64{
		fFrequency: n.Frequency, fLacunarity: n.Lacunarity, fPersistence: n.Persistence,
		fValue: n.Value, fDisplacement: n.Displacement, fLower: n.Lower, fUpper: n.Upper,
		fEdgeFalloff: n.EdgeFalloff, fExponent: n.Exponent, fPower: n.Power,
	} {
		if p != nil {
			out[name] = *p
		}
	}
	for name, vec := range map[string][]float64{fScale: n.Scale, fTranslate: n.Translate, fRotate: n.Rotate} {
		for i, v := range vec {
			out[fmt.Sprintf("%s[%d]", name, i)] = v
		}
	}

	return out
}

func (s SampleConfig) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("graphconf: sample size %dx%d: %w", s.Width, s.Height, ErrInvalidConfig)
	}
	if len(s.Bounds) != 4 {
		return fmt.Errorf("graphconf: sample bounds need 4 values, got %d: %w", len(s.Bounds), ErrInvalidConfig)
	}
	var err error
	switch s.Shape {
	case ShapePlane:
		err = s.planeBounds().Validate()
	case ShapeSphere:
		err = s.sphereBounds().Validate()
	case ShapeCylinder:
		err = s.cylinderBounds().Validate()
	default:
		return fmt.Errorf("graphconf: sample shape %q: %w", s.Shape, ErrInvalidConfig)
	}
	if err != nil {
		return fmt.Errorf("graphconf: sample: %w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func (s SampleConfig) planeBounds() noisemap.PlaneBounds {
	return noisemap.PlaneBounds{LowerX: s.Bounds[0], UpperX: s.Bounds[1], LowerZ: s.Bounds[2], UpperZ: s.Bounds[3]}
}

func (s SampleConfig) sphereBounds() noisemap.SphereBounds {
	return noisemap.SphereBounds{SouthLat: s.Bounds[0], NorthLat: s.Bounds[1], WestLon: s.Bounds[2], EastLon: s.Bounds[3]}
}

func (s SampleConfig) cylinderBounds() noisemap.CylinderBounds {
	return noisemap.CylinderBounds{LowerAngle: s.Bounds[0], UpperAngle: s.Bounds[1], LowerHeight: s.Bounds[2], UpperHeight: s.Bounds[3]}
}
