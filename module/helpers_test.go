package module_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/module"
)

// counting is a generator stand-in that records how often it is evaluated.
type counting struct {
	calls int
	fn    func(x, y, z float64) float64
}

func (c *counting) Evaluate(x, y, z float64) float64 {
	c.calls++
	if c.fn == nil {
		return x + 2*y + 3*z
	}

	return c.fn(x, y, z)
}

func (c *counting) SourceModuleCount() int { return 0 }

func (c *counting) SourceModule(int) (module.Module, error) { return nil, module.ErrNoModule }

func (c *counting) SetSourceModule(int, module.Module) error { return module.ErrInvalidParameter }

// requireNotBuiltPanic asserts that f panics with an error wrapping ErrNotBuilt.
func requireNotBuiltPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		require.True(t, errors.Is(err, module.ErrNotBuilt), "got %v", err)
	}()
	f()
}

// samplePoints returns a deterministic, lattice-avoiding spread of points.
func samplePoints(n int) [][3]float64 {
	pts := make([][3]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pts = append(pts, [3]float64{float64(i)*0.37 + 0.11, 0.5, float64(j)*0.53 + 0.07})
		}
	}

	return pts
}
