// SPDX-License-Identifier: MIT

package noisemap

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Map is a width×height grid of samples stored row-major: row y holds the
// samples for the y-th step along the map's vertical axis.
type Map struct {
	width, height int
	values        []float64
}

// New allocates a zeroed map. Returns ErrBadSize unless both sides are positive.
//
// Complexity: O(W×H).
func New(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("noisemap: New(%d, %d): %w", width, height, ErrBadSize)
	}

	return &Map{width: width, height: height, values: make([]float64, width*height)}, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds reports whether (x, y) lies within the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the sample at column x, row y.
func (m *Map) At(x, y int) (float64, error) {
	if !m.InBounds(x, y) {
		return 0, fmt.Errorf("noisemap: At(%d, %d) in %dx%d: %w", x, y, m.width, m.height, ErrOutOfRange)
	}

	return m.values[m.index(x, y)], nil
}

// Set stores v at column x, row y.
func (m *Map) Set(x, y int, v float64) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("noisemap: Set(%d, %d) in %dx%d: %w", x, y, m.width, m.height, ErrOutOfRange)
	}
	m.values[m.index(x, y)] = v

	return nil
}

// Row returns a copy of row y, or nil if y is out of range.
func (m *Map) Row(y int) []float64 {
	if y < 0 || y >= m.height {
		return nil
	}
	row := make([]float64, m.width)
	copy(row, m.values[y*m.width:(y+1)*m.width])

	return row
}

// Values returns a row-major copy of every sample.
func (m *Map) Values() []float64 {
	out := make([]float64, len(m.values))
	copy(out, m.values)

	return out
}

// Stats summarizes the samples of a map.
type Stats struct {
	Min, Max     float64
	Mean, StdDev float64
}

// Stats computes min, max, mean and sample standard deviation.
//
// Complexity: O(W×H).
func (m *Map) Stats() Stats {
	mean, std := stat.MeanStdDev(m.values, nil)

	return Stats{
		Min:    floats.Min(m.values),
		Max:    floats.Max(m.values),
		Mean:   mean,
		StdDev: std,
	}
}

// index maps (x, y) to the row-major offset y*width + x.
func (m *Map) index(x, y int) int { return y*m.width + x }
