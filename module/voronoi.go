package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/kernel"
)

// sqrt3 rescales the distance to the nearest seed into roughly [−1, 1].
const sqrt3 = 1.7320508075688772935

// Voronoi generates cell noise. Every unit cell of the scaled input space
// holds one seed point jittered by value noise; a point takes the constant
// value of the cell whose seed is nearest, optionally plus a term growing with
// the distance to that seed.
type Voronoi struct {
	sources
	frequency    float64
	displacement float64
	seed         int
	distance     bool
}

// NewVoronoi returns a Voronoi generator with frequency 1, displacement 1,
// seed 0 and the distance term disabled.
func NewVoronoi() *Voronoi {
	return &Voronoi{
		sources:      newSources("Voronoi", 0),
		frequency:    DefaultFrequency,
		displacement: 1.0,
		seed:         DefaultSeed,
	}
}

// Frequency returns the number of cells per unit length.
func (v *Voronoi) Frequency() float64 { return v.frequency }

// SetFrequency sets the number of cells per unit length.
func (v *Voronoi) SetFrequency(f float64) { v.frequency = f }

// Displacement returns the scale of the per-cell constant value.
func (v *Voronoi) Displacement() float64 { return v.displacement }

// SetDisplacement sets the scale of the per-cell constant value.
func (v *Voronoi) SetDisplacement(d float64) { v.displacement = d }

// Seed returns the seed used to jitter the cell seed points.
func (v *Voronoi) Seed() int { return v.seed }

// SetSeed sets the seed used to jitter the cell seed points.
func (v *Voronoi) SetSeed(seed int) { v.seed = seed }

// DistanceEnabled reports whether the distance term is added.
func (v *Voronoi) DistanceEnabled() bool { return v.distance }

// EnableDistance turns the distance term on or off.
func (v *Voronoi) EnableDistance(on bool) { v.distance = on }

// Value implements Module.
func (v *Voronoi) Value(x, y, z float64) float64 {
	x *= v.frequency
	y *= v.frequency
	z *= v.frequency

	c := v.nearestSeed(x, y, z)

	var value float64
	if v.distance {
		dx, dy, dz := c[0]-x, c[1]-y, c[2]-z
		value = math.Sqrt(dx*dx+dy*dy+dz*dz)*sqrt3 - 1.0
	}

	return value + v.displacement*kernel.ValueNoise3D(
		int(math.Floor(c[0])),
		int(math.Floor(c[1])),
		int(math.Floor(c[2])),
		0)
}

// nearestSeed scans the 5×5×5 block of cells around the scaled point and
// returns the closest seed point. The scan runs z, then y, then x; on an
// exact tie the first seed examined is kept.
func (v *Voronoi) nearestSeed(x, y, z float64) [3]float64 {
	xi, yi, zi := latticeFloor(x), latticeFloor(y), latticeFloor(z)

	best := math.MaxFloat64
	var candidate [3]float64

	for cz := zi - 2; cz <= zi+2; cz++ {
		for cy := yi - 2; cy <= yi+2; cy++ {
			for cx := xi - 2; cx <= xi+2; cx++ {
				px := float64(cx) + kernel.ValueNoise3D(cx, cy, cz, v.seed)
				py := float64(cy) + kernel.ValueNoise3D(cx, cy, cz, v.seed+1)
				pz := float64(cz) + kernel.ValueNoise3D(cx, cy, cz, v.seed+2)

				dx, dy, dz := px-x, py-y, pz-z
				if d := dx*dx + dy*dy + dz*dz; d < best {
					best = d
					candidate = [3]float64{px, py, pz}
				}
			}
		}
	}

	return candidate
}

// latticeFloor mirrors the kernel's cell lookup: the lower lattice
// coordinate, with non-positive integers assigned to the cell below.
func latticeFloor(v float64) int {
	if v > 0 {
		return int(v)
	}

	return int(v) - 1
}
