package module

import (
	"math"

	"github.com/katalvlaran/lvnoise/kernel"
)

// Perlin sums octaves of gradient coherent noise, each octave at lacunarity
// times the previous frequency and persistence times the previous amplitude.
// Output is roughly within [−1, 1] for the default persistence; the range is
// not guaranteed.
type Perlin struct {
	sources
	fractal
}

// NewPerlin returns a Perlin generator with the defaults overridden by opts.
func NewPerlin(opts ...FractalOption) *Perlin {
	return &Perlin{sources: newSources("Perlin", 0), fractal: newFractal(opts)}
}

// Value implements Module.
func (p *Perlin) Value(x, y, z float64) float64 {
	var value float64
	amplitude := 1.0

	x *= p.frequency
	y *= p.frequency
	z *= p.frequency

	for o := 0; o < p.octaves; o++ {
		signal := p.octave(x, y, z, p.seed+o)
		value += signal * amplitude

		x *= p.lacunarity
		y *= p.lacunarity
		z *= p.lacunarity
		amplitude *= p.persistence
	}

	return value
}

// octave samples one octave of coherent noise at an already scaled point.
func (f *fractal) octave(x, y, z float64, seed int) float64 {
	return kernel.GradientCoherentNoise3D(
		kernel.MakeInt32Range(x),
		kernel.MakeInt32Range(y),
		kernel.MakeInt32Range(z),
		seed, f.quality)
}

// Billow is Perlin with every octave rectified: 2·|signal| − 1. A final 0.5
// is added to the sum, giving billowy, cloud-like shapes.
type Billow struct {
	sources
	fractal
}

// NewBillow returns a Billow generator with the defaults overridden by opts.
func NewBillow(opts ...FractalOption) *Billow {
	return &Billow{sources: newSources("Billow", 0), fractal: newFractal(opts)}
}

// Value implements Module.
func (b *Billow) Value(x, y, z float64) float64 {
	var value float64
	amplitude := 1.0

	x *= b.frequency
	y *= b.frequency
	z *= b.frequency

	for o := 0; o < b.octaves; o++ {
		signal := b.octave(x, y, z, b.seed+o)
		signal = 2.0*math.Abs(signal) - 1.0
		value += signal * amplitude

		x *= b.lacunarity
		y *= b.lacunarity
		z *= b.lacunarity
		amplitude *= b.persistence
	}

	return value + 0.5
}

// Ridged multifractal constants. The spectral exponent and the feedback gain
// are fixed.
const (
	ridgedExponent = 1.0
	ridgedOffset   = 1.0
	ridgedGain     = 2.0
)

// RidgedMulti builds sharp ridges: each octave is (1 − |signal|)², scaled by
// a feedback weight taken from the previous octave and by a per-octave
// spectral weight frequency^−1. Persistence is not used.
type RidgedMulti struct {
	sources
	fractal
	spectral [MaxOctaveCount]float64
}

// NewRidgedMulti returns a RidgedMulti generator with the defaults overridden by opts.
func NewRidgedMulti(opts ...FractalOption) *RidgedMulti {
	r := &RidgedMulti{sources: newSources("RidgedMulti", 0), fractal: newFractal(opts)}
	r.computeSpectralWeights()

	return r
}

// SetLacunarity sets the frequency multiplier and recomputes the spectral weights.
func (r *RidgedMulti) SetLacunarity(v float64) {
	r.fractal.SetLacunarity(v)
	r.computeSpectralWeights()
}

// SpectralWeight returns the weight applied to octave o.
func (r *RidgedMulti) SpectralWeight(o int) float64 { return r.spectral[o] }

func (r *RidgedMulti) computeSpectralWeights() {
	frequency := 1.0
	for o := range r.spectral {
		r.spectral[o] = math.Pow(frequency, -ridgedExponent)
		frequency *= r.lacunarity
	}
}

// Value implements Module.
func (r *RidgedMulti) Value(x, y, z float64) float64 {
	var value float64
	weight := 1.0

	x *= r.frequency
	y *= r.frequency
	z *= r.frequency

	for o := 0; o < r.octaves; o++ {
		seed := (r.seed + o) & 0x7fffffff
		signal := r.octave(x, y, z, seed)

		// 1) Ridge: invert the magnitude and square it.
		signal = ridgedOffset - math.Abs(signal)
		signal *= signal

		// 2) Feedback from the previous octave.
		signal *= weight
		weight = math.Min(1, math.Max(0, signal*ridgedGain))

		// 3) Spectral weighting.
		value += signal * r.spectral[o]

		x *= r.lacunarity
		y *= r.lacunarity
		z *= r.lacunarity
	}

	return value*1.25 - 1.0
}
