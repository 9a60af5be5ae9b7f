package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/kernel"
)

// Checkerboard outputs alternating unit cubes of −1 and +1.
type Checkerboard struct{ sources }

// NewCheckerboard returns a Checkerboard.
func NewCheckerboard() *Checkerboard {
	return &Checkerboard{sources: newSources("Checkerboard", 0)}
}

// Value implements Module.
func (c *Checkerboard) Value(x, y, z float64) float64 {
	ix := int(math.Floor(kernel.MakeInt32Range(x)))
	iy := int(math.Floor(kernel.MakeInt32Range(y)))
	iz := int(math.Floor(kernel.MakeInt32Range(z)))
	if (ix^iy^iz)&1 != 0 {
		return -1.0
	}

	return 1.0
}

// Cylinders outputs concentric cylinders around the y axis: +1 on each
// cylinder surface and −1 halfway between two of them.
type Cylinders struct {
	sources
	frequency float64
}

// NewCylinders returns Cylinders with frequency 1.
func NewCylinders() *Cylinders {
	return &Cylinders{sources: newSources("Cylinders", 0), frequency: DefaultFrequency}
}

// Frequency returns the number of cylinders per unit radius.
func (c *Cylinders) Frequency() float64 { return c.frequency }

// SetFrequency sets the number of cylinders per unit radius.
func (c *Cylinders) SetFrequency(f float64) { c.frequency = f }

// Value implements Module. y is ignored.
func (c *Cylinders) Value(x, _, z float64) float64 {
	x *= c.frequency
	z *= c.frequency

	return shell(math.Sqrt(x*x + z*z))
}

// Spheres outputs concentric spheres around the origin: +1 on each sphere
// surface and −1 halfway between two of them.
type Spheres struct {
	sources
	frequency float64
}

// NewSpheres returns Spheres with frequency 1.
func NewSpheres() *Spheres {
	return &Spheres{sources: newSources("Spheres", 0), frequency: DefaultFrequency}
}

// Frequency returns the number of spheres per unit radius.
func (s *Spheres) Frequency() float64 { return s.frequency }

// SetFrequency sets the number of spheres per unit radius.
func (s *Spheres) SetFrequency(f float64) { s.frequency = f }

// Value implements Module.
func (s *Spheres) Value(x, y, z float64) float64 {
	x *= s.frequency
	y *= s.frequency
	z *= s.frequency

	return shell(math.Sqrt(x*x + y*y + z*z))
}

// shell maps a radius to 1 − 4·(distance to the nearest integer radius).
func shell(r float64) float64 {
	frac := r - math.Floor(r)
	nearest := math.Min(frac, 1.0-frac)

	return 1.0 - nearest*4.0
}
