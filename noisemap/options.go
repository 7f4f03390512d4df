// SPDX-License-Identifier: MIT

package noisemap

// buildConfig holds the optional knobs shared by the builders.
type buildConfig struct {
	seamless bool
	onRow    func(row int)
}

// BuildOption configures a Build* call.
type BuildOption func(*buildConfig)

// WithSeamless makes BuildPlane blend each sample with its copies one extent
// to the east, north and north-east, so the map tiles seamlessly. Sphere and
// cylinder maps ignore it.
func WithSeamless(on bool) BuildOption {
	return func(c *buildConfig) { c.seamless = on }
}

// WithRowCallback calls fn with the row index after each completed row.
// Panics if fn is nil.
func WithRowCallback(fn func(row int)) BuildOption {
	if fn == nil {
		panic("noisemap: WithRowCallback(nil)")
	}

	return func(c *buildConfig) { c.onRow = fn }
}

func newBuildConfig(opts []BuildOption) buildConfig {
	var c buildConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func (c *buildConfig) rowDone(row int) {
	if c.onRow != nil {
		c.onRow(row)
	}
}
