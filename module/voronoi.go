// SPDX-License-Identifier: MIT

package module

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvnoise/lattice"
)

// DefaultDisplacement is the default Voronoi cell value scale.
const DefaultDisplacement = 1.0

// voronoiReach is the cell radius scanned around the query cell (5×5×5).
const voronoiReach = 2

// Voronoi partitions space into cells around jittered seed points, one per
// unit cube. Each cell carries a value from the first gradient kernel sampled
// at its seed point; with distance enabled the distance to that point is
// added, shading each cell from its centre outwards.
type Voronoi struct {
	sources
	frequency    float64
	displacement float64
	seed         int32
	distance     bool

	// kernels are seeded seed, seed+1, seed+2; only the first colours cells.
	kernels []*lattice.Gradient
}

// NewVoronoi returns an unbuilt Voronoi generator with frequency 1,
// displacement 1, seed 0 and distance off.
func NewVoronoi() *Voronoi {
	return &Voronoi{
		sources:      newSources(KindVoronoi.SourceCount()),
		frequency:    DefaultFrequency,
		displacement: DefaultDisplacement,
		seed:         DefaultSeed,
	}
}

// Kind returns KindVoronoi.
func (v *Voronoi) Kind() Kind { return KindVoronoi }

// Frequency returns the cell density.
func (v *Voronoi) Frequency() float64 { return v.frequency }

// SetFrequency sets the cell density.
func (v *Voronoi) SetFrequency(f float64) { v.frequency = f }

// Displacement returns the cell value scale.
func (v *Voronoi) Displacement() float64 { return v.displacement }

// SetDisplacement sets the cell value scale.
func (v *Voronoi) SetDisplacement(d float64) { v.displacement = d }

// Seed returns the seed of the jitter hash and cell kernels.
func (v *Voronoi) Seed() int32 { return v.seed }

// SetSeed sets the seed. Rebuild afterwards.
func (v *Voronoi) SetSeed(seed int32) { v.seed = seed }

// DistanceEnabled reports whether the distance term is added.
func (v *Voronoi) DistanceEnabled() bool { return v.distance }

// EnableDistance toggles the distance term.
func (v *Voronoi) EnableDistance(on bool) { v.distance = on }

// Build allocates the three cell kernels.
func (v *Voronoi) Build() {
	v.kernels = []*lattice.Gradient{
		lattice.NewGradient(v.seed),
		lattice.NewGradient(v.seed + 1),
		lattice.NewGradient(v.seed + 2),
	}
}

// Built reports whether Build has been called.
func (v *Voronoi) Built() bool { return v.kernels != nil }

// Evaluate finds the nearest jittered seed point among the 5×5×5 surrounding
// cells and returns its cell value. Panics with ErrNotBuilt before Build.
//
// Complexity: O(125) hash evaluations.
func (v *Voronoi) Evaluate(x, y, z float64) float64 {
	if v.kernels == nil {
		panic(notBuilt(KindVoronoi))
	}

	p := r3.Vec{X: x * v.frequency, Y: y * v.frequency, Z: z * v.frequency}
	xi, yi, zi := voronoiCell(p.X), voronoiCell(p.Y), voronoiCell(p.Z)

	minDist := float64(math.MaxInt32)
	var candidate r3.Vec
	for zc := zi - voronoiReach; zc <= zi+voronoiReach; zc++ {
		for yc := yi - voronoiReach; yc <= yi+voronoiReach; yc++ {
			for xc := xi - voronoiReach; xc <= xi+voronoiReach; xc++ {
				pos := r3.Vec{
					X: float64(xc) + lattice.ValueNoise3D(xc, yc, zc, v.seed),
					Y: float64(yc) + lattice.ValueNoise3D(xc, yc, zc, v.seed+1),
					Z: float64(zc) + lattice.ValueNoise3D(xc, yc, zc, v.seed+2),
				}
				if d := r3.Norm2(r3.Sub(pos, p)); d < minDist {
					minDist = d
					candidate = pos
				}
			}
		}
	}

	cell := v.displacement * v.kernels[0].Evaluate(candidate.X, candidate.Y, candidate.Z)
	if !v.distance {
		return math.Abs(cell)
	}
	dist := r3.Norm(r3.Sub(candidate, p))*math.Sqrt(3) - 1

	return math.Abs(dist + cell)
}

// Clone returns a copy sharing the cell kernels.
func (v *Voronoi) Clone() Module {
	c := *v
	c.sources = v.sources.clone()

	return &c
}

// voronoiCell truncates towards the cell origin; non-positive coordinates
// step one cell down, including exact zero.
func voronoiCell(c float64) int32 {
	if c > 0 {
		return int32(c)
	}

	return int32(c) - 1
}
