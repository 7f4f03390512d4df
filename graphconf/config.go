// SPDX-License-Identifier: MIT

package graphconf

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is a complete graph document.
type Config struct {
	// Seed is added to each node's index to seed nodes without an explicit
	// seed. Zero leaves those nodes randomly seeded.
	Seed    int32        `yaml:"seed"`
	Root    string       `yaml:"root"`
	Modules []NodeConfig `yaml:"modules"`
	Sample  SampleConfig `yaml:"sample"`
}

// NodeConfig declares one node. Pointer fields are optional; nil keeps the
// kind's default.
type NodeConfig struct {
	ID      string   `yaml:"id"`
	Kind    string   `yaml:"kind"`
	Sources []string `yaml:"sources,omitempty"`

	// Generators.
	Seed         *int32   `yaml:"seed,omitempty"`
	Frequency    *float64 `yaml:"frequency,omitempty"`
	Lacunarity   *float64 `yaml:"lacunarity,omitempty"`
	Persistence  *float64 `yaml:"persistence,omitempty"`
	Octaves      *int     `yaml:"octaves,omitempty"`
	Quality      string   `yaml:"quality,omitempty"`
	Value        *float64 `yaml:"value,omitempty"`
	Displacement *float64 `yaml:"displacement,omitempty"`
	Distance     *bool    `yaml:"distance,omitempty"`

	// Operators.
	Lower       *float64  `yaml:"lower,omitempty"`
	Upper       *float64  `yaml:"upper,omitempty"`
	EdgeFalloff *float64  `yaml:"edge_falloff,omitempty"`
	Exponent    *float64  `yaml:"exponent,omitempty"`
	Power       *float64  `yaml:"power,omitempty"`
	Roughness   *int      `yaml:"roughness,omitempty"`
	Scale       []float64 `yaml:"scale,omitempty"`
	Translate   []float64 `yaml:"translate,omitempty"`
	Rotate      []float64 `yaml:"rotate,omitempty"`
}

// SampleConfig is the window sampled by Graph.Sample.
//
// Bounds by shape:
//   - plane:    [lowerX, upperX, lowerZ, upperZ]
//   - sphere:   [southLat, northLat, westLon, eastLon] (degrees)
//   - cylinder: [lowerAngle, upperAngle, lowerHeight, upperHeight]
type SampleConfig struct {
	Shape    string    `yaml:"shape"`
	Width    int       `yaml:"width"`
	Height   int       `yaml:"height"`
	Bounds   []float64 `yaml:"bounds"`
	Seamless bool      `yaml:"seamless"`
}

// Sampling shapes.
const (
	ShapePlane    = "plane"
	ShapeSphere   = "sphere"
	ShapeCylinder = "cylinder"
)

// Load decodes one YAML document from r. Unknown keys are rejected.
// The result is not validated; call Validate or Build.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	cfg := &Config{}
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("graphconf: Load: empty document: %w", ErrInvalidConfig)
		}

		return nil, fmt.Errorf("graphconf: Load: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// LoadFile reads and decodes the YAML file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphconf: LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the embedded example graph.
func Default() *Config {
	cfg, err := Load(bytes.NewReader(defaultsYAML))
	if err != nil {
		panic(fmt.Sprintf("graphconf: embedded defaults: %v", err))
	}

	return cfg
}

// Marshal encodes cfg back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("graphconf: Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("graphconf: Marshal: %w", err)
	}

	return buf.Bytes(), nil
}

// applyDefaults fills the sampling window left empty by the document.
func (c *Config) applyDefaults() {
	if c.Sample.Shape == "" {
		c.Sample.Shape = ShapePlane
	}
	if c.Sample.Width == 0 {
		c.Sample.Width = 64
	}
	if c.Sample.Height == 0 {
		c.Sample.Height = 64
	}
	if len(c.Sample.Bounds) == 0 {
		switch c.Sample.Shape {
		case ShapeSphere:
			c.Sample.Bounds = []float64{-90, 90, -180, 180}
		case ShapeCylinder:
			c.Sample.Bounds = []float64{0, 360, -1, 1}
		default:
			c.Sample.Bounds = []float64{0, 1, 0, 1}
		}
	}
}
