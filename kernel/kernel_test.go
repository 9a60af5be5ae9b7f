package kernel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/kernel"
)

var qualities = []kernel.Quality{kernel.Fast, kernel.Standard, kernel.Best}

// TestVectorIndex_KnownValues pins the hash for a few corners, including a negative one.
func TestVectorIndex_KnownValues(t *testing.T) {
	assert.Equal(t, 0, kernel.VectorIndex(0, 0, 0, 0))
	assert.Equal(t, 85, kernel.VectorIndex(1, 0, 0, 0))
	assert.Equal(t, 84, kernel.VectorIndex(-1, 0, 0, 0))
}

// TestVectorIndex_Range checks every hash lands in [0, 255], even for huge coordinates.
func TestVectorIndex_Range(t *testing.T) {
	for i := -300; i <= 300; i += 7 {
		for _, seed := range []int{0, 1, -17, math.MaxInt32} {
			idx := kernel.VectorIndex(i, i*31, -i*977, seed)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 256)
		}
	}
}

// TestGradient_UnitLength verifies every table entry is a unit vector and indices wrap.
func TestGradient_UnitLength(t *testing.T) {
	for i := 0; i < 256; i++ {
		g := kernel.Gradient(i)
		length := math.Sqrt(g[0]*g[0] + g[1]*g[1] + g[2]*g[2])
		assert.InDelta(t, 1.0, length, 1e-12, "gradient %d", i)
	}
	assert.Equal(t, kernel.Gradient(3), kernel.Gradient(256+3))
}

// TestGradientNoise3D_ZeroAtCorner: a corner contributes nothing at its own position.
func TestGradientNoise3D_ZeroAtCorner(t *testing.T) {
	assert.Zero(t, math.Abs(kernel.GradientNoise3D(4, -2, 9, 4, -2, 9, 42)))
}

// TestGradientCoherentNoise3D_ZeroOnLattice covers positive, zero and negative lattice points.
func TestGradientCoherentNoise3D_ZeroOnLattice(t *testing.T) {
	points := [][3]float64{{0, 0, 0}, {1, 2, 3}, {-4, 0, 7}, {-1, -1, -1}}
	for _, q := range qualities {
		for _, p := range points {
			v := kernel.GradientCoherentNoise3D(p[0], p[1], p[2], 7, q)
			assert.InDelta(t, 0.0, v, 1e-12, "%s at %v", q, p)
		}
	}
}

// TestGradientCoherentNoise3D_Bounded samples a region and checks the theoretical bound.
func TestGradientCoherentNoise3D_Bounded(t *testing.T) {
	bound := 2.12 * math.Sqrt(3)
	for _, q := range qualities {
		for x := -3.0; x < 3.0; x += 0.37 {
			for y := -3.0; y < 3.0; y += 0.41 {
				v := kernel.GradientCoherentNoise3D(x, y, 0.5, 3, q)
				require.LessOrEqual(t, math.Abs(v), bound)
			}
		}
	}
}

// TestCoherentNoise_Continuous checks both noise fields across lattice faces,
// including the face at zero where truncation changes direction.
func TestCoherentNoise_Continuous(t *testing.T) {
	const eps = 1e-9
	faces := []float64{-2, -1, 0, 1, 5}
	for _, q := range qualities {
		for _, f := range faces {
			g0 := kernel.GradientCoherentNoise3D(f-eps, 0.3, 0.7, 11, q)
			g1 := kernel.GradientCoherentNoise3D(f+eps, 0.3, 0.7, 11, q)
			assert.InDelta(t, g0, g1, 1e-6, "gradient %s at x=%v", q, f)

			v0 := kernel.ValueCoherentNoise3D(0.3, f-eps, 0.7, 11, q)
			v1 := kernel.ValueCoherentNoise3D(0.3, f+eps, 0.7, 11, q)
			assert.InDelta(t, v0, v1, 1e-6, "value %s at y=%v", q, f)
		}
	}
}

// TestCoherentNoise_Deterministic: repeated calls agree and the seed matters.
func TestCoherentNoise_Deterministic(t *testing.T) {
	a := kernel.GradientCoherentNoise3D(1.25, -3.5, 0.75, 9, kernel.Standard)
	b := kernel.GradientCoherentNoise3D(1.25, -3.5, 0.75, 9, kernel.Standard)
	assert.Equal(t, a, b)

	differs := false
	for x := 0.1; x < 5 && !differs; x += 0.3 {
		differs = kernel.GradientCoherentNoise3D(x, 0.5, 0.5, 0, kernel.Standard) !=
			kernel.GradientCoherentNoise3D(x, 0.5, 0.5, 1, kernel.Standard)
	}
	assert.True(t, differs, "seed must influence the field")
}

// TestIntValueNoise3D_KnownValue pins the origin value and the output range.
func TestIntValueNoise3D_KnownValue(t *testing.T) {
	assert.Equal(t, 1376312589, kernel.IntValueNoise3D(0, 0, 0, 0))
	assert.InDelta(t, 1-1376312589.0/1073741824.0, kernel.ValueNoise3D(0, 0, 0, 0), 1e-15)

	for i := -50; i < 50; i++ {
		n := kernel.IntValueNoise3D(i, i*3, -i, i%5)
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, math.MaxInt32)

		v := kernel.ValueNoise3D(i, i*3, -i, i%5)
		require.Greater(t, v, -1.0)
		require.LessOrEqual(t, v, 1.0)
	}
}

// TestValueCoherentNoise3D_MatchesCornerOnLattice: on a lattice point the field equals the corner value.
func TestValueCoherentNoise3D_MatchesCornerOnLattice(t *testing.T) {
	points := [][3]int{{2, 3, 4}, {0, 0, 0}, {-3, 1, -2}}
	for _, q := range qualities {
		for _, p := range points {
			got := kernel.ValueCoherentNoise3D(float64(p[0]), float64(p[1]), float64(p[2]), 5, q)
			assert.InDelta(t, kernel.ValueNoise3D(p[0], p[1], p[2], 5), got, 1e-12)
		}
	}
}

// TestMakeInt32Range covers identity inside the range and folding outside.
func TestMakeInt32Range(t *testing.T) {
	const half = 1073741824.0

	assert.Equal(t, 12.5, kernel.MakeInt32Range(12.5))
	assert.Equal(t, -12.5, kernel.MakeInt32Range(-12.5))
	assert.Equal(t, -half, kernel.MakeInt32Range(half))
	assert.Equal(t, 10-half, kernel.MakeInt32Range(half+5))
	assert.Equal(t, half-10, kernel.MakeInt32Range(-half-5))

	for _, n := range []float64{3e9, -3e9, 1e15, -1e15, 7.5e18} {
		assert.LessOrEqual(t, math.Abs(kernel.MakeInt32Range(n)), half, "n=%v", n)
	}
}

// TestParseQuality covers every name, the alias and the error path.
func TestParseQuality(t *testing.T) {
	tests := []struct {
		in   string
		want kernel.Quality
	}{
		{"fast", kernel.Fast},
		{"Standard", kernel.Standard},
		{" std ", kernel.Standard},
		{"BEST", kernel.Best},
	}
	for _, tt := range tests {
		got, err := kernel.ParseQuality(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.NotEmpty(t, got.String())
	}

	_, err := kernel.ParseQuality("ultra")
	assert.True(t, errors.Is(err, kernel.ErrUnknownQuality))
	assert.Equal(t, "Quality(9)", kernel.Quality(9).String())
}
