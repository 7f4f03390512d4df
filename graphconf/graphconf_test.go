package graphconf_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/graphconf"
	"github.com/katalvlaran/lvnoise/lattice"
	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/noisemap"
)

const small = `
seed: 100
root: out
modules:
  - id: a
    kind: const
    value: 0.42
  - id: p
    kind: perlin
    octaves: 3
    quality: std
  - id: q
    kind: billow
    seed: 7
  - id: out
    kind: blend
    sources: [p, q, a]
sample:
  width: 8
  height: 4
  bounds: [0, 2, 0, 1]
`

func load(t *testing.T, doc string) *graphconf.Config {
	t.Helper()
	cfg, err := graphconf.Load(strings.NewReader(doc))
	require.NoError(t, err)

	return cfg
}

func TestDefaultBuildsAndSamples(t *testing.T) {
	cfg := graphconf.Default()
	require.NoError(t, cfg.Validate())

	g, err := cfg.Build()
	require.NoError(t, err)
	require.NoError(t, module.Validate(g.Root))

	rows := 0
	m, err := g.Sample(noisemap.WithRowCallback(func(int) { rows++ }))
	require.NoError(t, err)
	assert.Equal(t, 128, m.Width())
	assert.Equal(t, 128, rows)

	s := m.Stats()
	assert.False(t, math.IsNaN(s.Mean))
	assert.Less(t, s.Min, s.Max)
}

func TestBuildAppliesSettingsAndSeeds(t *testing.T) {
	g, err := load(t, small).Build()
	require.NoError(t, err)

	p, err := g.Node("p")
	require.NoError(t, err)
	perlin := p.(*module.Perlin)
	assert.Equal(t, 3, perlin.OctaveCount())
	assert.Equal(t, lattice.QualityStd, perlin.Quality())
	assert.Equal(t, int32(101), perlin.Seed(), "document seed plus index")
	assert.True(t, perlin.Built())

	q, _ := g.Node("q")
	assert.Equal(t, int32(7), q.(*module.Billow).Seed(), "explicit seed wins")

	a, _ := g.Node("a")
	assert.Equal(t, 0.42, a.Evaluate(1, 2, 3))

	_, err = g.Node("missing")
	assert.ErrorIs(t, err, graphconf.ErrUnknownModule)

	// Blend control is a constant 0.42, so alpha = 0.71.
	pv, qv := perlin.Evaluate(0.3, 0, 0.6), q.Evaluate(0.3, 0, 0.6)
	assert.InDelta(t, 0.29*pv+0.71*qv, g.Root.Evaluate(0.3, 0, 0.6), 1e-12)
}

func TestZeroDocumentSeedKeepsNodesRandom(t *testing.T) {
	cfg := load(t, strings.Replace(small, "seed: 100", "seed: 0", 1))
	g, err := cfg.Build()
	require.NoError(t, err)
	p, _ := g.Node("p")
	assert.Equal(t, int32(0), p.(*module.Perlin).Seed())
}

func TestNegativeDocumentSeedSkipsSentinel(t *testing.T) {
	doc := strings.Replace(small, "seed: 100", "seed: -1", 1)

	var values []float64
	for range 3 {
		g, err := load(t, doc).Build()
		require.NoError(t, err)
		p, _ := g.Node("p")
		assert.Equal(t, int32(1), p.(*module.Perlin).Seed(), "-1 plus index 1 steps over 0")
		out, _ := g.Node("out")
		values = append(values, out.Evaluate(0.3, 0.7, 0.1))
	}
	assert.Equal(t, values[0], values[1])
	assert.Equal(t, values[0], values[2])
}

func TestSampleDefaultsAndShapes(t *testing.T) {
	cfg := load(t, "root: c\nmodules: [{id: c, kind: checkerboard}]\n")
	assert.Equal(t, graphconf.ShapePlane, cfg.Sample.Shape)
	assert.Equal(t, 64, cfg.Sample.Width)
	assert.Equal(t, []float64{0, 1, 0, 1}, cfg.Sample.Bounds)

	sphere := load(t, "root: s\nmodules: [{id: s, kind: spheres}]\nsample: {shape: sphere, width: 8, height: 4}\n")
	assert.Equal(t, []float64{-90, 90, -180, 180}, sphere.Sample.Bounds)
	g, err := sphere.Build()
	require.NoError(t, err)
	m, err := g.Sample()
	require.NoError(t, err)
	assert.Equal(t, 4, m.Height())
	assert.Equal(t, graphconf.ShapeSphere, g.SampleConfig().Shape)

	cyl := load(t, "root: s\nmodules: [{id: s, kind: spheres}]\nsample: {shape: cylinder, width: 4, height: 2}\n")
	g, err = cyl.Build()
	require.NoError(t, err)
	m, err = g.Sample()
	require.NoError(t, err)
	// Unit cylinder at height -1 is at distance sqrt(2) from the origin.
	v, _ := m.At(0, 0)
	assert.InDelta(t, 1-4*(math.Sqrt2-1), v, 1e-12)
}

func TestLoadIsStrict(t *testing.T) {
	_, err := graphconf.Load(strings.NewReader("root: a\nmodules: [{id: a, kind: const, colour: red}]\n"))
	assert.Error(t, err)

	_, err = graphconf.Load(strings.NewReader("rooot: a\n"))
	assert.Error(t, err)

	_, err = graphconf.Load(strings.NewReader(""))
	assert.ErrorIs(t, err, graphconf.ErrInvalidConfig)
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"duplicate id", "root: a\nmodules: [{id: a, kind: const}, {id: a, kind: const}]", graphconf.ErrInvalidConfig},
		{"empty id", "root: a\nmodules: [{kind: const}]", graphconf.ErrInvalidConfig},
		{"unknown kind", "root: a\nmodules: [{id: a, kind: ridged}]", module.ErrUnknownKind},
		{"arity", "root: a\nmodules: [{id: a, kind: invert}]", graphconf.ErrInvalidConfig},
		{"too many sources", "root: a\nmodules: [{id: a, kind: const, sources: [a]}]", graphconf.ErrInvalidConfig},
		{"unknown source", "root: a\nmodules: [{id: a, kind: invert, sources: [b]}]", graphconf.ErrUnknownModule},
		{"no root", "modules: [{id: a, kind: const}]", graphconf.ErrInvalidConfig},
		{"unknown root", "root: z\nmodules: [{id: a, kind: const}]", graphconf.ErrUnknownModule},
		{"unreachable", "root: a\nmodules: [{id: a, kind: const}, {id: b, kind: const}]", graphconf.ErrInvalidConfig},
		{"unsupported field", "root: a\nmodules: [{id: a, kind: const, octaves: 3}]", graphconf.ErrInvalidConfig},
		{"quality", "root: a\nmodules: [{id: a, kind: billow, quality: ultra}]", graphconf.ErrInvalidConfig},
		{"non-finite", "root: a\nmodules: [{id: a, kind: perlin, frequency: .inf}]", graphconf.ErrInvalidConfig},
		{"bounds", "root: a\nmodules: [{id: c, kind: const}, {id: a, kind: clamp, sources: [c], lower: 2}]", graphconf.ErrInvalidConfig},
		{"scale", "root: a\nmodules: [{id: c, kind: const}, {id: a, kind: scalepoint, sources: [c], scale: [1, 2]}]", graphconf.ErrInvalidConfig},
		{"rotate", "root: a\nmodules: [{id: c, kind: const}, {id: a, kind: rotatepoint, sources: [c], rotate: [90]}]", graphconf.ErrInvalidConfig},
		{"shape", "root: a\nmodules: [{id: a, kind: const}]\nsample: {shape: torus}", graphconf.ErrInvalidConfig},
		{"sample size", "root: a\nmodules: [{id: a, kind: const}]\nsample: {width: -1}", graphconf.ErrInvalidConfig},
		{"sample bounds", "root: a\nmodules: [{id: a, kind: const}]\nsample: {bounds: [1, 0, 0, 1]}", noisemap.ErrBadBounds},
		{"sample bounds length", "root: a\nmodules: [{id: a, kind: const}]\nsample: {bounds: [0, 1]}", graphconf.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := load(t, tc.doc)
			err := cfg.Validate()
			require.ErrorIs(t, err, tc.want)

			_, err = cfg.Build()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOctaveSettingsAreClamped(t *testing.T) {
	cfg := load(t, `
root: t
modules:
  - {id: p, kind: perlin, octaves: 31}
  - {id: t, kind: turbulence, sources: [p], roughness: 0}
`)
	require.NoError(t, cfg.Validate())
	g, err := cfg.Build()
	require.NoError(t, err)

	p, _ := g.Node("p")
	assert.Equal(t, module.MaxOctaveCount, p.(*module.Perlin).OctaveCount())
	tb, _ := g.Node("t")
	assert.Equal(t, 1, tb.(*module.Turbulence).Roughness())
}

func TestBuildRejectsCycles(t *testing.T) {
	cfg := load(t, "root: a\nmodules: [{id: a, kind: invert, sources: [b]}, {id: b, kind: clamp, sources: [a]}]")
	require.NoError(t, cfg.Validate(), "structure alone is fine")

	_, err := cfg.Build()
	assert.ErrorIs(t, err, module.ErrCycle)
	assert.ErrorIs(t, err, graphconf.ErrInvalidConfig)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := load(t, small)
	g1, err := cfg.Build()
	require.NoError(t, err)

	data, err := cfg.Marshal()
	require.NoError(t, err)
	again := load(t, string(data))
	assert.Equal(t, cfg, again)

	g2, err := again.Build()
	require.NoError(t, err)
	for _, p := range [][3]float64{{0.1, 0, 0.2}, {1.7, 0, 0.9}, {-3.3, 0, 2.5}} {
		assert.Equal(t, g1.Root.Evaluate(p[0], p[1], p[2]), g2.Root.Evaluate(p[0], p[1], p[2]))
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(small), 0o600))

	cfg, err := graphconf.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Root)
	assert.Len(t, cfg.Modules, 4)

	_, err = graphconf.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
