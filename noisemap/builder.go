// SPDX-License-Identifier: MIT

package noisemap

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/module"
	"github.com/katalvlaran/lvnoise/scalar"
)

// PlaneBounds is the x/z window sampled by BuildPlane.
type PlaneBounds struct {
	LowerX, UpperX float64
	LowerZ, UpperZ float64
}

// Validate returns ErrBadBounds unless both axes have lower < upper.
func (b PlaneBounds) Validate() error {
	return checkAxes("PlaneBounds", b.LowerX, b.UpperX, b.LowerZ, b.UpperZ)
}

// SphereBounds is the latitude/longitude window (degrees) sampled by
// BuildSphere.
type SphereBounds struct {
	SouthLat, NorthLat float64
	WestLon, EastLon   float64
}

// Validate returns ErrBadBounds unless south < north and west < east.
func (b SphereBounds) Validate() error {
	return checkAxes("SphereBounds", b.SouthLat, b.NorthLat, b.WestLon, b.EastLon)
}

// CylinderBounds is the angle (degrees) and height window sampled by
// BuildCylinder.
type CylinderBounds struct {
	LowerAngle, UpperAngle   float64
	LowerHeight, UpperHeight float64
}

// Validate returns ErrBadBounds unless both axes have lower < upper.
func (b CylinderBounds) Validate() error {
	return checkAxes("CylinderBounds", b.LowerAngle, b.UpperAngle, b.LowerHeight, b.UpperHeight)
}

// BuildPlane samples src over bounds into a width×height map. Column x and
// row z sample the point (LowerX + x·dx, LowerZ + z·dz) with
// dx = (UpperX-LowerX)/width and dz = (UpperZ-LowerZ)/height.
//
// The graph is checked with module.Validate before any sample is taken.
//
// Complexity: O(W×H) evaluations, four times that when seamless.
func BuildPlane(src module.Module, width, height int, bounds PlaneBounds, opts ...BuildOption) (*Map, error) {
	// 1) Validate inputs and the graph.
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	m, err := prepare(src, width, height)
	if err != nil {
		return nil, err
	}
	cfg := newBuildConfig(opts)

	// 2) Walk the window row by row.
	xExtent := bounds.UpperX - bounds.LowerX
	zExtent := bounds.UpperZ - bounds.LowerZ
	xDelta := xExtent / float64(width)
	zDelta := zExtent / float64(height)

	zCur := bounds.LowerZ
	for z := 0; z < height; z++ {
		xCur := bounds.LowerX
		for x := 0; x < width; x++ {
			var v float64
			if !cfg.seamless {
				v = Plane(src, xCur, zCur)
			} else {
				// 2a) Blend the four copies of the window around this point.
				sw := Plane(src, xCur, zCur)
				se := Plane(src, xCur+xExtent, zCur)
				nw := Plane(src, xCur, zCur+zExtent)
				ne := Plane(src, xCur+xExtent, zCur+zExtent)
				xBlend := 1 - (xCur-bounds.LowerX)/xExtent
				zBlend := 1 - (zCur-bounds.LowerZ)/zExtent
				z0 := scalar.Lerp(sw, se, xBlend)
				z1 := scalar.Lerp(nw, ne, xBlend)
				v = scalar.Lerp(z0, z1, zBlend)
			}
			m.values[m.index(x, z)] = v
			xCur += xDelta
		}
		zCur += zDelta
		cfg.rowDone(z)
	}

	return m, nil
}

// BuildSphere samples src over a latitude/longitude window into a
// width×height map; columns step eastwards, rows step northwards.
//
// Complexity: O(W×H) evaluations.
func BuildSphere(src module.Module, width, height int, bounds SphereBounds, opts ...BuildOption) (*Map, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	m, err := prepare(src, width, height)
	if err != nil {
		return nil, err
	}
	cfg := newBuildConfig(opts)

	lonDelta := (bounds.EastLon - bounds.WestLon) / float64(width)
	latDelta := (bounds.NorthLat - bounds.SouthLat) / float64(height)

	lat := bounds.SouthLat
	for y := 0; y < height; y++ {
		lon := bounds.WestLon
		for x := 0; x < width; x++ {
			m.values[m.index(x, y)] = Sphere(src, lat, lon)
			lon += lonDelta
		}
		lat += latDelta
		cfg.rowDone(y)
	}

	return m, nil
}

// BuildCylinder samples src over an angle/height window into a width×height
// map; columns step by angle, rows by height.
//
// Complexity: O(W×H) evaluations.
func BuildCylinder(src module.Module, width, height int, bounds CylinderBounds, opts ...BuildOption) (*Map, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	m, err := prepare(src, width, height)
	if err != nil {
		return nil, err
	}
	cfg := newBuildConfig(opts)

	angleDelta := (bounds.UpperAngle - bounds.LowerAngle) / float64(width)
	heightDelta := (bounds.UpperHeight - bounds.LowerHeight) / float64(height)

	h := bounds.LowerHeight
	for y := 0; y < height; y++ {
		angle := bounds.LowerAngle
		for x := 0; x < width; x++ {
			m.values[m.index(x, y)] = Cylinder(src, angle, h)
			angle += angleDelta
		}
		h += heightDelta
		cfg.rowDone(y)
	}

	return m, nil
}

// prepare validates the graph and allocates the destination map.
func prepare(src module.Module, width, height int) (*Map, error) {
	if err := module.Validate(src); err != nil {
		return nil, fmt.Errorf("noisemap: source graph: %w", err)
	}

	return New(width, height)
}

func checkAxes(name string, lo1, hi1, lo2, hi2 float64) error {
	if !(lo1 < hi1) || !(lo2 < hi2) {
		return fmt.Errorf("noisemap: %s [%v,%v]x[%v,%v]: %w", name, lo1, hi1, lo2, hi2, ErrBadBounds)
	}

	return nil
}
