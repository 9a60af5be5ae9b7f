package kernel

import "github.com/katalvlaran/lvnoise/interp"

// Hash multipliers.
const (
	xNoiseGen     = 1619
	yNoiseGen     = 31337
	zNoiseGen     = 6971
	seedNoiseGen  = 1013
	shiftNoiseGen = 8
)

// gradientScale biases the gradient dot product toward [−1, 1].
const gradientScale = 2.12

// latticeMix combines lattice coordinates and seed in wrapping int32 arithmetic.
func latticeMix(ix, iy, iz, seed int) int32 {
	return xNoiseGen*int32(ix) + yNoiseGen*int32(iy) + zNoiseGen*int32(iz) + seedNoiseGen*int32(seed)
}

// VectorIndex hashes a lattice corner and seed to an index into the gradient table.
func VectorIndex(ix, iy, iz, seed int) int {
	n := latticeMix(ix, iy, iz, seed)
	n ^= n >> shiftNoiseGen

	return int(n & 0xff)
}

// GradientNoise3D returns the gradient noise contribution of lattice corner
// (ix, iy, iz) at the real point (fx, fy, fz). It is zero when the point sits on
// the corner.
func GradientNoise3D(fx, fy, fz float64, ix, iy, iz, seed int) float64 {
	g := gradients[VectorIndex(ix, iy, iz, seed)]

	dx := fx - float64(ix)
	dy := fy - float64(iy)
	dz := fz - float64(iz)

	return (g[0]*dx + g[1]*dy + g[2]*dz) * gradientScale
}

// GradientCoherentNoise3D returns smooth gradient noise at (x, y, z).
// Coordinates should already be inside the int32 range (see MakeInt32Range).
func GradientCoherentNoise3D(x, y, z float64, seed int, q Quality) float64 {
	// 1) Unit cube surrounding the point.
	x0, y0, z0 := latticeFloor(x), latticeFloor(y), latticeFloor(z)
	x1, y1, z1 := x0+1, y0+1, z0+1

	// 2) Eased interpolants.
	xs := q.ease(x - float64(x0))
	ys := q.ease(y - float64(y0))
	zs := q.ease(z - float64(z0))

	// 3) Trilinear interpolation of the eight corner values.
	n0 := GradientNoise3D(x, y, z, x0, y0, z0, seed)
	n1 := GradientNoise3D(x, y, z, x1, y0, z0, seed)
	ix0 := interp.Linear(n0, n1, xs)
	n0 = GradientNoise3D(x, y, z, x0, y1, z0, seed)
	n1 = GradientNoise3D(x, y, z, x1, y1, z0, seed)
	ix1 := interp.Linear(n0, n1, xs)
	iy0 := interp.Linear(ix0, ix1, ys)

	n0 = GradientNoise3D(x, y, z, x0, y0, z1, seed)
	n1 = GradientNoise3D(x, y, z, x1, y0, z1, seed)
	ix0 = interp.Linear(n0, n1, xs)
	n0 = GradientNoise3D(x, y, z, x0, y1, z1, seed)
	n1 = GradientNoise3D(x, y, z, x1, y1, z1, seed)
	ix1 = interp.Linear(n0, n1, xs)
	iy1 := interp.Linear(ix0, ix1, ys)

	return interp.Linear(iy0, iy1, zs)
}

// IntValueNoise3D returns an integer noise value in [0, 2^31) for a lattice
// corner and seed.
func IntValueNoise3D(ix, iy, iz, seed int) int {
	n := latticeMix(ix, iy, iz, seed) & 0x7fffffff
	n = (n >> 13) ^ n

	return int((n*(n*n*60493+19990303) + 1376312589) & 0x7fffffff)
}

// ValueNoise3D returns value noise in (−1, 1] for a lattice corner and seed.
func ValueNoise3D(ix, iy, iz, seed int) float64 {
	return 1.0 - float64(IntValueNoise3D(ix, iy, iz, seed))/1073741824.0
}

// ValueCoherentNoise3D returns smooth value noise at (x, y, z): the corner
// values of the surrounding lattice cell interpolated exactly like
// GradientCoherentNoise3D.
func ValueCoherentNoise3D(x, y, z float64, seed int, q Quality) float64 {
	x0, y0, z0 := latticeFloor(x), latticeFloor(y), latticeFloor(z)
	x1, y1, z1 := x0+1, y0+1, z0+1

	xs := q.ease(x - float64(x0))
	ys := q.ease(y - float64(y0))
	zs := q.ease(z - float64(z0))

	ix0 := interp.Linear(ValueNoise3D(x0, y0, z0, seed), ValueNoise3D(x1, y0, z0, seed), xs)
	ix1 := interp.Linear(ValueNoise3D(x0, y1, z0, seed), ValueNoise3D(x1, y1, z0, seed), xs)
	iy0 := interp.Linear(ix0, ix1, ys)

	ix0 = interp.Linear(ValueNoise3D(x0, y0, z1, seed), ValueNoise3D(x1, y0, z1, seed), xs)
	ix1 = interp.Linear(ValueNoise3D(x0, y1, z1, seed), ValueNoise3D(x1, y1, z1, seed), xs)
	iy1 := interp.Linear(ix0, ix1, ys)

	return interp.Linear(iy0, iy1, zs)
}

// latticeFloor returns the lower lattice coordinate of the cell containing v.
// Non-positive integers map to the cell below, so the fraction is 1 there;
// both neighbouring cells agree on that face, which keeps the field continuous.
func latticeFloor(v float64) int {
	if v > 0 {
		return int(v)
	}

	return int(v) - 1
}
