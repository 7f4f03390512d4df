// SPDX-License-Identifier: MIT

package noisemap

import (
	"math"

	"github.com/katalvlaran/lvnoise/module"
)

// Plane samples m on the y = 0 plane.
func Plane(m module.Module, x, z float64) float64 {
	return m.Evaluate(x, 0, z)
}

// Sphere samples m on the unit sphere at latitude lat and longitude lon,
// both in degrees. Latitude +90 is the +y pole; longitude 0 lies on +x.
func Sphere(m module.Module, lat, lon float64) float64 {
	latSin, latCos := math.Sincos(lat * degToRad)
	lonSin, lonCos := math.Sincos(lon * degToRad)

	return m.Evaluate(latCos*lonCos, latSin, latCos*lonSin)
}

// Cylinder samples m on the unit cylinder around the y axis at the given
// angle (degrees, 0 on +x) and height.
func Cylinder(m module.Module, angle, height float64) float64 {
	s, c := math.Sincos(angle * degToRad)

	return m.Evaluate(c, height, s)
}

const degToRad = math.Pi / 180
