package module

import "fmt"

// Fixed fractional offsets of the three Turbulence fields. They decorrelate
// the fields and keep sample points off the integer lattice, where gradient
// noise is zero.
var turbulenceOffsets = [3][3]float64{
	{12414.0 / 65536.0, 65124.0 / 65536.0, 31337.0 / 65536.0},
	{26519.0 / 65536.0, 18128.0 / 65536.0, 60493.0 / 65536.0},
	{53820.0 / 65536.0, 11213.0 / 65536.0, 44845.0 / 65536.0},
}

// Turbulence defaults.
const (
	DefaultTurbulencePower     = 1.0
	DefaultTurbulenceRoughness = 3
)

// Turbulence moves the input point by three private Perlin fields before
// evaluating its source, producing a swirled version of the source output.
type Turbulence struct {
	unary
	power float64
	xd    Perlin
	yd    Perlin
	zd    Perlin
}

// NewTurbulence returns a Turbulence with frequency 1, power 1, roughness 3
// and seed 0.
func NewTurbulence() *Turbulence {
	t := &Turbulence{unary: newUnary("Turbulence"), power: DefaultTurbulencePower}
	t.xd = *NewPerlin()
	t.yd = *NewPerlin()
	t.zd = *NewPerlin()
	t.SetSeed(DefaultSeed)
	t.SetFrequency(DefaultFrequency)
	_ = t.SetRoughness(DefaultTurbulenceRoughness)

	return t
}

// Frequency returns the frequency shared by the three displacement fields.
func (t *Turbulence) Frequency() float64 { return t.xd.Frequency() }

// SetFrequency sets the frequency of the three displacement fields.
func (t *Turbulence) SetFrequency(f float64) {
	t.xd.SetFrequency(f)
	t.yd.SetFrequency(f)
	t.zd.SetFrequency(f)
}

// Power returns the scale applied to the displacement.
func (t *Turbulence) Power() float64 { return t.power }

// SetPower sets the scale applied to the displacement.
func (t *Turbulence) SetPower(p float64) { t.power = p }

// Roughness returns the octave count of the displacement fields.
func (t *Turbulence) Roughness() int { return t.xd.OctaveCount() }

// SetRoughness sets the octave count of the displacement fields.
// n outside [1, MaxOctaveCount] is rejected with ErrOctaveCount.
func (t *Turbulence) SetRoughness(n int) error {
	if err := checkOctaves(n); err != nil {
		return fmt.Errorf("module: Turbulence.SetRoughness(%d): %w", n, err)
	}
	t.xd.octaves, t.yd.octaves, t.zd.octaves = n, n, n

	return nil
}

// Seed returns the seed of the x displacement field.
func (t *Turbulence) Seed() int { return t.xd.Seed() }

// SetSeed seeds the x, y and z displacement fields with seed, seed+1 and seed+2.
func (t *Turbulence) SetSeed(seed int) {
	t.xd.SetSeed(seed)
	t.yd.SetSeed(seed + 1)
	t.zd.SetSeed(seed + 2)
}

// Value implements Module. It panics if the source is unset.
func (t *Turbulence) Value(x, y, z float64) float64 {
	src := t.must(0)

	o := &turbulenceOffsets
	dx := t.xd.Value(x+o[0][0], y+o[0][1], z+o[0][2])
	dy := t.yd.Value(x+o[1][0], y+o[1][1], z+o[1][2])
	dz := t.zd.Value(x+o[2][0], y+o[2][1], z+o[2][2])

	return src.Value(x+dx*t.power, y+dy*t.power, z+dz*t.power)
}

// Displace slots.
const (
	slotDisplaceOutput = 0
	slotDisplaceX      = 1
	slotDisplaceY      = 2
	slotDisplaceZ      = 3
)

// Displace offsets the input point by the values of three displacement
// sources, then evaluates its output source at the displaced point.
type Displace struct {
	sources
}

// NewDisplace returns an unwired Displace.
func NewDisplace() *Displace {
	return &Displace{sources: newSources("Displace", 4)}
}

// SetOutput wires the module evaluated at the displaced point (slot 0).
func (d *Displace) SetOutput(src Module) { d.slots[slotDisplaceOutput] = src }

// SetXDisplace wires the x displacement source (slot 1).
func (d *Displace) SetXDisplace(src Module) { d.slots[slotDisplaceX] = src }

// SetYDisplace wires the y displacement source (slot 2).
func (d *Displace) SetYDisplace(src Module) { d.slots[slotDisplaceY] = src }

// SetZDisplace wires the z displacement source (slot 3).
func (d *Displace) SetZDisplace(src Module) { d.slots[slotDisplaceZ] = src }

// SetDisplaceSources wires all three displacement sources at once.
func (d *Displace) SetDisplaceSources(x, y, z Module) {
	d.SetXDisplace(x)
	d.SetYDisplace(y)
	d.SetZDisplace(z)
}

// Output returns the module evaluated at the displaced point.
func (d *Displace) Output() (Module, error) { return d.Source(slotDisplaceOutput) }

// XDisplace returns the x displacement source.
func (d *Displace) XDisplace() (Module, error) { return d.Source(slotDisplaceX) }

// YDisplace returns the y displacement source.
func (d *Displace) YDisplace() (Module, error) { return d.Source(slotDisplaceY) }

// ZDisplace returns the z displacement source.
func (d *Displace) ZDisplace() (Module, error) { return d.Source(slotDisplaceZ) }

// Value implements Module. It panics if any of the four sources is unset.
func (d *Displace) Value(x, y, z float64) float64 {
	out := d.must(slotDisplaceOutput)
	dx := d.must(slotDisplaceX).Value(x, y, z)
	dy := d.must(slotDisplaceY).Value(x, y, z)
	dz := d.must(slotDisplaceZ).Value(x, y, z)

	return out.Value(x+dx, y+dy, z+dz)
}
