// SPDX-License-Identifier: MIT

package module

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ScalePoint multiplies the query point per axis before passing it to its
// source. Default scale is 1 on every axis.
type ScalePoint struct {
	sources
	scale r3.Vec
}

// NewScalePoint returns a ScalePoint with unit scale.
func NewScalePoint(src Module) *ScalePoint {
	return &ScalePoint{sources: newSources(KindScalePoint.SourceCount(), src), scale: r3.Vec{X: 1, Y: 1, Z: 1}}
}

// Kind returns KindScalePoint.
func (n *ScalePoint) Kind() Kind { return KindScalePoint }

// Scale returns the per-axis factors.
func (n *ScalePoint) Scale() (x, y, z float64) { return n.scale.X, n.scale.Y, n.scale.Z }

// SetScale sets the per-axis factors.
func (n *ScalePoint) SetScale(x, y, z float64) { n.scale = r3.Vec{X: x, Y: y, Z: z} }

// SetUniformScale sets every axis to s.
func (n *ScalePoint) SetUniformScale(s float64) { n.SetScale(s, s, s) }

// SetXScale sets the x factor.
func (n *ScalePoint) SetXScale(s float64) { n.scale.X = s }

// SetYScale sets the y factor.
func (n *ScalePoint) SetYScale(s float64) { n.scale.Y = s }

// SetZScale sets the z factor.
func (n *ScalePoint) SetZScale(s float64) { n.scale.Z = s }

// Evaluate returns source(x·sx, y·sy, z·sz).
func (n *ScalePoint) Evaluate(x, y, z float64) float64 {
	return n.slots[0].Evaluate(x*n.scale.X, y*n.scale.Y, z*n.scale.Z)
}

// Clone returns a copy bound to the same source.
func (n *ScalePoint) Clone() Module {
	c := *n
	c.sources = n.sources.clone()

	return &c
}

// TranslatePoint offsets the query point per axis before passing it to its
// source. Default translation is zero.
type TranslatePoint struct {
	sources
	offset r3.Vec
}

// NewTranslatePoint returns a TranslatePoint with zero offset.
func NewTranslatePoint(src Module) *TranslatePoint {
	return &TranslatePoint{sources: newSources(KindTranslatePoint.SourceCount(), src)}
}

// Kind returns KindTranslatePoint.
func (n *TranslatePoint) Kind() Kind { return KindTranslatePoint }

// Translation returns the per-axis offsets.
func (n *TranslatePoint) Translation() (x, y, z float64) { return n.offset.X, n.offset.Y, n.offset.Z }

// SetTranslation sets the per-axis offsets.
func (n *TranslatePoint) SetTranslation(x, y, z float64) { n.offset = r3.Vec{X: x, Y: y, Z: z} }

// SetUniformTranslation sets every axis offset to t.
func (n *TranslatePoint) SetUniformTranslation(t float64) { n.SetTranslation(t, t, t) }

// SetXTranslation sets the x offset.
func (n *TranslatePoint) SetXTranslation(t float64) { n.offset.X = t }

// SetYTranslation sets the y offset.
func (n *TranslatePoint) SetYTranslation(t float64) { n.offset.Y = t }

// SetZTranslation sets the z offset.
func (n *TranslatePoint) SetZTranslation(t float64) { n.offset.Z = t }

// Evaluate returns source(p + offset).
func (n *TranslatePoint) Evaluate(x, y, z float64) float64 {
	return n.slots[0].Evaluate(x+n.offset.X, y+n.offset.Y, z+n.offset.Z)
}

// Clone returns a copy bound to the same source.
func (n *TranslatePoint) Clone() Module {
	c := *n
	c.sources = n.sources.clone()

	return &c
}

// RotatePoint rotates the query point about the origin before passing it to
// its source. Angles are in degrees in a left-handed system; the matrix is
// recomputed on every angle change.
type RotatePoint struct {
	sources
	xAngle, yAngle, zAngle float64

	// rows of the rotation matrix
	row1, row2, row3 r3.Vec
}

// NewRotatePoint returns a RotatePoint with all angles zero.
func NewRotatePoint(src Module) *RotatePoint {
	n := &RotatePoint{sources: newSources(KindRotatePoint.SourceCount(), src)}
	n.SetAngles(0, 0, 0)

	return n
}

// Kind returns KindRotatePoint.
func (n *RotatePoint) Kind() Kind { return KindRotatePoint }

// Angles returns the rotation angles in degrees.
func (n *RotatePoint) Angles() (x, y, z float64) { return n.xAngle, n.yAngle, n.zAngle }

// SetAngles sets all three angles (degrees) and rebuilds the matrix.
func (n *RotatePoint) SetAngles(x, y, z float64) {
	n.xAngle, n.yAngle, n.zAngle = x, y, z

	xSin, xCos := math.Sincos(degToRad(x))
	ySin, yCos := math.Sincos(degToRad(y))
	zSin, zCos := math.Sincos(degToRad(z))

	n.row1 = r3.Vec{
		X: ySin*xSin*zSin + yCos*zCos,
		Y: xCos * zSin,
		Z: ySin*zCos - yCos*xSin*zSin,
	}
	n.row2 = r3.Vec{
		X: ySin*xSin*zCos - yCos*zSin,
		Y: xCos * zCos,
		Z: -yCos*xSin*zCos - ySin*zSin,
	}
	n.row3 = r3.Vec{
		X: -ySin * xCos,
		Y: xSin,
		Z: yCos * xCos,
	}
}

// SetXAngle sets the x angle (degrees).
func (n *RotatePoint) SetXAngle(a float64) { n.SetAngles(a, n.yAngle, n.zAngle) }

// SetYAngle sets the y angle (degrees).
func (n *RotatePoint) SetYAngle(a float64) { n.SetAngles(n.xAngle, a, n.zAngle) }

// SetZAngle sets the z angle (degrees).
func (n *RotatePoint) SetZAngle(a float64) { n.SetAngles(n.xAngle, n.yAngle, a) }

// Evaluate returns source(R·p).
func (n *RotatePoint) Evaluate(x, y, z float64) float64 {
	p := r3.Vec{X: x, Y: y, Z: z}

	return n.slots[0].Evaluate(r3.Dot(n.row1, p), r3.Dot(n.row2, p), r3.Dot(n.row3, p))
}

// Clone returns a copy bound to the same source.
func (n *RotatePoint) Clone() Module {
	c := *n
	c.sources = n.sources.clone()

	return &c
}

func degToRad(deg float64) float64 { return deg / 180 * math.Pi }
