// SPDX-License-Identifier: MIT

package module

// Turbulence defaults.
const (
	DefaultTurbulencePower     = 1.0
	DefaultTurbulenceRoughness = 3
)

// Fixed offsets decorrelating the three distortion fields; each is a 16.16
// fixed-point fraction so the sample points never land on lattice corners.
var (
	turbX0 = [3]float64{12414.0 / 65536.0, 65124.0 / 65536.0, 31337.0 / 65536.0}
	turbX1 = [3]float64{26519.0 / 65536.0, 18128.0 / 65536.0, 60493.0 / 65536.0}
	turbX2 = [3]float64{53820.0 / 65536.0, 11213.0 / 65536.0, 44845.0 / 65536.0}
)

// Turbulence displaces the query point by three independent Perlin fields
// scaled by power, then evaluates its source at the displaced point.
//
// Frequency, roughness (octave count) and seed are forwarded to the internal
// Perlin nodes, seeded seed, seed+1 and seed+2 (all random for seed 0).
// Call Build after construction and after changing any of them.
type Turbulence struct {
	sources
	power                        float64
	xDistort, yDistort, zDistort *Perlin
}

// NewTurbulence returns an unbuilt Turbulence wrapping src with power 1,
// roughness 3, frequency 1 and seed 0.
func NewTurbulence(src Module) *Turbulence {
	n := &Turbulence{
		sources:  newSources(KindTurbulence.SourceCount(), src),
		power:    DefaultTurbulencePower,
		xDistort: NewPerlin(),
		yDistort: NewPerlin(),
		zDistort: NewPerlin(),
	}
	n.SetSeed(DefaultSeed)
	n.SetFrequency(DefaultFrequency)
	n.SetRoughness(DefaultTurbulenceRoughness)

	return n
}

// Kind returns KindTurbulence.
func (n *Turbulence) Kind() Kind { return KindTurbulence }

// Power returns the displacement scale.
func (n *Turbulence) Power() float64 { return n.power }

// SetPower sets the displacement scale. Zero disables displacement.
func (n *Turbulence) SetPower(p float64) { n.power = p }

// Frequency returns the distortion frequency.
func (n *Turbulence) Frequency() float64 { return n.xDistort.Frequency() }

// SetFrequency sets the distortion frequency.
func (n *Turbulence) SetFrequency(f float64) {
	n.xDistort.SetFrequency(f)
	n.yDistort.SetFrequency(f)
	n.zDistort.SetFrequency(f)
}

// Roughness returns the octave count of the distortion fields.
func (n *Turbulence) Roughness() int { return n.xDistort.OctaveCount() }

// SetRoughness sets the octave count of the distortion fields, clamped into
// [1, MaxOctaveCount].
func (n *Turbulence) SetRoughness(r int) {
	n.xDistort.SetOctaveCount(r)
	n.yDistort.SetOctaveCount(r)
	n.zDistort.SetOctaveCount(r)
}

// Seed returns the seed of the x distortion field.
func (n *Turbulence) Seed() int32 { return n.xDistort.Seed() }

// SetSeed seeds the distortion fields with seed, seed+1 and seed+2. The
// sentinel seed keeps all three random.
func (n *Turbulence) SetSeed(seed int32) {
	if seed == DefaultSeed {
		n.xDistort.SetSeed(seed)
		n.yDistort.SetSeed(seed)
		n.zDistort.SetSeed(seed)

		return
	}
	n.xDistort.SetSeed(seed)
	n.yDistort.SetSeed(seed + 1)
	n.zDistort.SetSeed(seed + 2)
}

// Build builds the three distortion fields.
func (n *Turbulence) Build() {
	n.xDistort.Build()
	n.yDistort.Build()
	n.zDistort.Build()
}

// Built reports whether all distortion fields are built.
func (n *Turbulence) Built() bool {
	return n.xDistort.Built() && n.yDistort.Built() && n.zDistort.Built()
}

// Evaluate displaces (x, y, z) and samples the source there.
// Panics with ErrNotBuilt before Build.
func (n *Turbulence) Evaluate(x, y, z float64) float64 {
	if !n.Built() {
		panic(notBuilt(KindTurbulence))
	}

	dx := x + n.xDistort.Evaluate(x+turbX0[0], y+turbX0[1], z+turbX0[2])*n.power
	dy := y + n.yDistort.Evaluate(x+turbX1[0], y+turbX1[1], z+turbX1[2])*n.power
	dz := z + n.zDistort.Evaluate(x+turbX2[0], y+turbX2[1], z+turbX2[2])*n.power

	return n.slots[0].Evaluate(dx, dy, dz)
}

// Clone returns a copy with its own distortion nodes sharing built kernels.
func (n *Turbulence) Clone() Module {
	c := *n
	c.sources = n.sources.clone()
	c.xDistort = n.xDistort.Clone().(*Perlin)
	c.yDistort = n.yDistort.Clone().(*Perlin)
	c.zDistort = n.zDistort.Clone().(*Perlin)

	return &c
}
