// SPDX-License-Identifier: MIT

package lattice

// Skew and unskew factors for three dimensions.
const (
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0
)

// Simplex is a 3D simplex-noise kernel sharing the permutation scheme and
// gradient table of Gradient. Each point blends the four corners of its
// enclosing tetrahedron with a radial falloff, so it does not vanish on the
// integer lattice.
type Simplex struct {
	table *Permutation
}

// NewSimplex returns a kernel seeded with seed. Seed 0 draws a random seed.
func NewSimplex(seed int32) *Simplex {
	return &Simplex{table: NewPermutation(seed)}
}

// SetSeed rebuilds the permutation table for seed.
func (s *Simplex) SetSeed(seed int32) { s.table = NewPermutation(seed) }

// Seed returns the effective seed of the permutation table.
func (s *Simplex) Seed() int32 { return s.table.Seed() }

// Table exposes the permutation table.
func (s *Simplex) Table() *Permutation { return s.table }

// Evaluate returns simplex noise at (x, y, z), roughly within [-1, 1].
//
// Complexity: O(1).
func (s *Simplex) Evaluate(x, y, z float64) float64 {
	// 1) Skew into simplex-cell space and find the cell origin.
	f := (x + y + z) * skew3
	i, j, k := fastFloor(x+f), fastFloor(y+f), fastFloor(z+f)
	g := float64(i+j+k) * unskew3
	x0 := x - (float64(i) - g)
	y0 := y - (float64(j) - g)
	z0 := z - (float64(k) - g)

	// 2) Rank the offsets to pick the tetrahedron.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	// 3) Offsets of the remaining corners in unskewed space.
	x1 := x0 - float64(i1) + unskew3
	y1 := y0 - float64(j1) + unskew3
	z1 := z0 - float64(k1) + unskew3
	x2 := x0 - float64(i2) + 2.0*unskew3
	y2 := y0 - float64(j2) + 2.0*unskew3
	z2 := z0 - float64(k2) + 2.0*unskew3
	x3 := x0 - 1.0 + 3.0*unskew3
	y3 := y0 - 1.0 + 3.0*unskew3
	z3 := z0 - 1.0 + 3.0*unskew3

	// 4) Hash corners.
	ii, jj, kk := i&(tableSize-1), j&(tableSize-1), k&(tableSize-1)
	t := s.table
	gi0 := t.hash(ii, jj, kk)
	gi1 := t.hash(ii+i1, jj+j1, kk+k1)
	gi2 := t.hash(ii+i2, jj+j2, kk+k2)
	gi3 := t.hash(ii+1, jj+1, kk+1)

	// 5) Sum the corner contributions and scale into [-1, 1].
	n := corner(gi0, x0, y0, z0) +
		corner(gi1, x1, y1, z1) +
		corner(gi2, x2, y2, z2) +
		corner(gi3, x3, y3, z3)

	return 32.0 * n
}

// corner returns the radially attenuated contribution of one simplex corner.
func corner(gi int, x, y, z float64) float64 {
	t := 0.6 - x*x - y*y - z*z
	if t < 0 {
		return 0
	}
	t *= t

	return t * t * Gradients[gi].Dot(x, y, z)
}
