package module_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/module"
)

func TestSourceSlots(t *testing.T) {
	sel := module.NewSelect(nil, nil, nil)
	require.Equal(t, 3, sel.SourceModuleCount())

	_, err := sel.SourceModule(0)
	assert.ErrorIs(t, err, module.ErrNoModule)
	_, err = sel.SourceModule(3)
	assert.ErrorIs(t, err, module.ErrNoModule)
	_, err = sel.SourceModule(-1)
	assert.ErrorIs(t, err, module.ErrNoModule)

	assert.ErrorIs(t, sel.SetSourceModule(3, module.NewConst(1)), module.ErrInvalidParameter)
	assert.ErrorIs(t, sel.SetSourceModule(-1, module.NewConst(1)), module.ErrInvalidParameter)
	assert.ErrorIs(t, sel.SetSourceModule(0, nil), module.ErrInvalidParameter)

	c := module.NewConst(1)
	require.NoError(t, sel.SetSourceModule(1, c))
	got, err := sel.SourceModule(1)
	require.NoError(t, err)
	assert.Same(t, c, got)

	// Generators have no slots at all.
	assert.ErrorIs(t, module.NewConst(0).SetSourceModule(0, c), module.ErrInvalidParameter)
}

func TestUnboundSlotFaults(t *testing.T) {
	assert.Panics(t, func() { module.NewInvert(nil).Evaluate(0, 0, 0) })
	assert.Panics(t, func() { module.NewMax(module.NewConst(1), nil).Evaluate(0, 0, 0) })
}

func TestInvertExponentMax(t *testing.T) {
	src := &counting{fn: func(x, _, _ float64) float64 { return x }}

	assert.Equal(t, -0.25, module.NewInvert(src).Evaluate(0.25, 0, 0))

	e := module.NewExponent(src)
	assert.Equal(t, module.DefaultExponent, e.Exponent())
	assert.InDelta(t, 0.5, e.Evaluate(0.5, 0, 0), 1e-15)
	e.SetExponent(2)
	// ((0+1)/2)^2*2 - 1 = -0.5
	assert.InDelta(t, -0.5, e.Evaluate(0, 0, 0), 1e-15)
	assert.InDelta(t, 1.0, e.Evaluate(1, 0, 0), 1e-15)

	m := module.NewMax(src, module.NewConst(0.1))
	assert.Equal(t, 0.1, m.Evaluate(-3, 0, 0))
	assert.Equal(t, 0.7, m.Evaluate(0.7, 0, 0))
}

func TestClampRange(t *testing.T) {
	src := &counting{fn: func(x, _, _ float64) float64 { return x }}
	c := module.NewClamp(src)
	assert.Equal(t, -1.0, c.LowerBound())
	assert.Equal(t, 1.0, c.UpperBound())
	require.NoError(t, c.SetBounds(-0.5, 0.25))

	for _, v := range []float64{-10, -0.5, -0.1, 0, 0.25, 0.3, 1e9} {
		got := c.Evaluate(v, 0, 0)
		assert.GreaterOrEqual(t, got, -0.5)
		assert.LessOrEqual(t, got, 0.25)
		if v >= -0.5 && v <= 0.25 {
			assert.Equal(t, v, got, "inside values pass through")
		}
	}
}

func TestClampRejectsInvertedBounds(t *testing.T) {
	c := module.NewClamp(module.NewConst(0))
	assert.ErrorIs(t, c.SetBounds(1, 1), module.ErrInvalidParameter)
	assert.ErrorIs(t, c.SetBounds(2, -2), module.ErrInvalidParameter)
	assert.ErrorIs(t, c.SetBounds(math.NaN(), 1), module.ErrInvalidParameter)
	assert.Equal(t, -1.0, c.LowerBound(), "bounds unchanged after rejection")
}

func TestBlend(t *testing.T) {
	ctrl := module.NewConst(-1)
	b := module.NewBlend(module.NewConst(2), module.NewConst(4), ctrl)

	assert.Equal(t, 2.0, b.Evaluate(0, 0, 0))
	ctrl.SetValue(1)
	assert.Equal(t, 4.0, b.Evaluate(0, 0, 0))
	ctrl.SetValue(0)
	assert.Equal(t, 3.0, b.Evaluate(0, 0, 0))
}

func TestSelectHardEdges(t *testing.T) {
	ctrl := module.NewConst(0)
	sel := module.NewSelect(module.NewConst(-7), module.NewConst(9), ctrl)
	require.NoError(t, sel.SetBounds(-0.5, 0.5))

	cases := map[float64]float64{
		-0.75: -7, -0.5: 9, 0: 9, 0.5: 9, 0.5000001: -7, 3: -7,
	}
	for c, want := range cases {
		ctrl.SetValue(c)
		assert.Equal(t, want, sel.Evaluate(1, 2, 3), "control %v", c)
	}
}

func TestSelectEdgeFalloff(t *testing.T) {
	ctrl := module.NewConst(0)
	sel := module.NewSelect(module.NewConst(0), module.NewConst(1), ctrl)
	require.NoError(t, sel.SetBounds(-0.5, 0.5))
	sel.SetEdgeFalloff(0.1)
	require.Equal(t, 0.1, sel.EdgeFalloff())

	// Exactly on a bound the blend is the midpoint.
	ctrl.SetValue(-0.5)
	assert.InDelta(t, 0.5, sel.Evaluate(0, 0, 0), 1e-12)
	ctrl.SetValue(0.5)
	assert.InDelta(t, 0.5, sel.Evaluate(0, 0, 0), 1e-12)

	// Outside the bands the raw sources come through.
	ctrl.SetValue(-0.7)
	assert.Equal(t, 0.0, sel.Evaluate(0, 0, 0))
	ctrl.SetValue(0)
	assert.Equal(t, 1.0, sel.Evaluate(0, 0, 0))
	ctrl.SetValue(0.7)
	assert.Equal(t, 0.0, sel.Evaluate(0, 0, 0))

	// Within the lower band the output rises towards source 1, within the
	// upper band it falls back towards source 0.
	ctrl.SetValue(-0.45)
	lo := sel.Evaluate(0, 0, 0)
	ctrl.SetValue(0.45)
	hi := sel.Evaluate(0, 0, 0)
	assert.Greater(t, lo, 0.5)
	assert.Less(t, lo, 1.0)
	assert.InDelta(t, lo, hi, 1e-12, "bands are symmetric")
}

func TestSelectFalloffClampedToHalfSpan(t *testing.T) {
	sel := module.NewSelect(module.NewConst(0), module.NewConst(1), module.NewConst(0))
	sel.SetEdgeFalloff(5)
	assert.Equal(t, 1.0, sel.EdgeFalloff())

	require.NoError(t, sel.SetBounds(0, 0.5))
	assert.Equal(t, 0.25, sel.EdgeFalloff(), "SetBounds re-clamps")

	assert.ErrorIs(t, sel.SetBounds(0.5, 0), module.ErrInvalidParameter)
	assert.Equal(t, 0.0, sel.LowerBound())
}

func TestSelectZeroFalloffNeverBlends(t *testing.T) {
	a := &counting{fn: func(x, _, _ float64) float64 { return 100 + x }}
	b := &counting{fn: func(x, _, _ float64) float64 { return -100 - x }}
	ctrl := &counting{fn: func(x, _, _ float64) float64 { return math.Sin(x * 7) }}
	sel := module.NewSelect(a, b, ctrl)
	require.NoError(t, sel.SetBounds(-0.3, 0.4))

	for i := 0; i < 500; i++ {
		x := float64(i) * 0.013
		got := sel.Evaluate(x, 0, 0)
		assert.True(t, got == 100+x || got == -100-x, "value %v is a blend", got)
	}
}

func TestSelectControlAccessors(t *testing.T) {
	sel := module.NewSelect(module.NewConst(0), module.NewConst(1), nil)
	_, err := sel.Control()
	assert.True(t, errors.Is(err, module.ErrNoModule))

	ctrl := module.NewConst(0.2)
	require.NoError(t, sel.SetControl(ctrl))
	got, err := sel.Control()
	require.NoError(t, err)
	assert.Same(t, ctrl, got)
}

func TestCachedEvaluatesSourceOnce(t *testing.T) {
	src := &counting{}
	c := module.NewCached(src)

	v1 := c.Evaluate(1.5, -2, 3)
	v2 := c.Evaluate(1.5, -2, 3)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 1, src.calls)

	c.Evaluate(1.5, -2, 3.25)
	assert.Equal(t, 2, src.calls)

	// Bit-exact comparison: -0 differs from +0.
	c.Evaluate(0, 0, 0)
	c.Evaluate(math.Copysign(0, -1), 0, 0)
	assert.Equal(t, 4, src.calls)
}

func TestCachedInvalidatedByRebind(t *testing.T) {
	first, second := &counting{}, &counting{fn: func(_, _, _ float64) float64 { return 42 }}
	c := module.NewCached(first)
	c.Evaluate(1, 1, 1)

	require.NoError(t, c.SetSourceModule(0, second))
	assert.Equal(t, 42.0, c.Evaluate(1, 1, 1))
	assert.Equal(t, 1, second.calls)

	c.Invalidate()
	c.Evaluate(1, 1, 1)
	assert.Equal(t, 2, second.calls)

	assert.ErrorIs(t, c.SetSourceModule(1, second), module.ErrInvalidParameter)
}

func TestCachedSharedByParents(t *testing.T) {
	src := &counting{}
	shared := module.NewCached(src)
	root := module.NewMax(module.NewInvert(shared), shared)

	root.Evaluate(0.5, 0.5, 0.5)
	assert.Equal(t, 1, src.calls)
}

func TestScaleAndTranslatePoint(t *testing.T) {
	src := &counting{} // x + 2y + 3z

	s := module.NewScalePoint(src)
	assert.Equal(t, 6.0, s.Evaluate(1, 1, 1))
	s.SetScale(2, 3, 4)
	assert.Equal(t, 2.0+6+12, s.Evaluate(1, 1, 1))
	s.SetUniformScale(0.5)
	assert.Equal(t, 3.0, s.Evaluate(1, 1, 1))
	s.SetYScale(0)
	x, y, z := s.Scale()
	assert.Equal(t, [3]float64{0.5, 0, 0.5}, [3]float64{x, y, z})

	tr := module.NewTranslatePoint(src)
	assert.Equal(t, 6.0, tr.Evaluate(1, 1, 1))
	tr.SetTranslation(1, 0, -1)
	assert.Equal(t, 2.0+2-0, tr.Evaluate(1, 1, 1))
	tr.SetZTranslation(0)
	tr.SetXTranslation(0)
	tr.SetYTranslation(0.5)
	assert.Equal(t, 7.0, tr.Evaluate(1, 1, 1))
}

func TestRotatePoint(t *testing.T) {
	var gotX, gotY, gotZ float64
	src := &counting{fn: func(x, y, z float64) float64 {
		gotX, gotY, gotZ = x, y, z
		return 0
	}}
	r := module.NewRotatePoint(src)

	r.Evaluate(1, 2, 3)
	assert.Equal(t, [3]float64{1, 2, 3}, [3]float64{gotX, gotY, gotZ}, "identity at zero angles")

	r.SetZAngle(90)
	r.Evaluate(1, 0, 0)
	assert.InDelta(t, 0.0, gotX, 1e-12)
	assert.InDelta(t, -1.0, gotY, 1e-12)
	assert.InDelta(t, 0.0, gotZ, 1e-12)

	// Rotation preserves length.
	r.SetAngles(30, 45, 60)
	r.Evaluate(1, 2, 3)
	assert.InDelta(t, math.Sqrt(14), math.Sqrt(gotX*gotX+gotY*gotY+gotZ*gotZ), 1e-12)
	ax, ay, az := r.Angles()
	assert.Equal(t, [3]float64{30, 45, 60}, [3]float64{ax, ay, az})
}

func TestTurbulenceZeroPower(t *testing.T) {
	src := module.NewPerlin(module.WithSeed(21))
	src.Build()
	tb := module.NewTurbulence(src)
	tb.SetSeed(4)
	tb.SetPower(0)
	tb.Build()

	for _, p := range samplePoints(10) {
		require.Equal(t, src.Evaluate(p[0], p[1], p[2]), tb.Evaluate(p[0], p[1], p[2]))
	}
}

func TestTurbulenceDisplaces(t *testing.T) {
	src := &counting{}
	tb := module.NewTurbulence(src)
	assert.Equal(t, module.DefaultTurbulencePower, tb.Power())
	assert.Equal(t, module.DefaultTurbulenceRoughness, tb.Roughness())
	assert.Equal(t, module.DefaultFrequency, tb.Frequency())

	tb.SetSeed(9)
	assert.Equal(t, int32(9), tb.Seed())
	tb.SetRoughness(2)
	tb.SetFrequency(0.5)
	tb.Build()

	moved := 0
	for _, p := range samplePoints(6) {
		if tb.Evaluate(p[0], p[1], p[2]) != p[0]+2*p[1]+3*p[2] {
			moved++
		}
	}
	assert.Greater(t, moved, 30)

	// Changing the seed requires a rebuild.
	before := tb.Evaluate(0.3, 0.4, 0.5)
	tb.SetSeed(10)
	assert.Equal(t, before, tb.Evaluate(0.3, 0.4, 0.5))
	tb.Build()
	assert.NotEqual(t, before, tb.Evaluate(0.3, 0.4, 0.5))
}
