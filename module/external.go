package module

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Classic defaults.
const (
	DefaultClassicAlpha = 2.0
	DefaultClassicBeta  = 2.0
	DefaultClassicN     = 3
)

// Classic wraps the reference Perlin implementation of the perlin package
// as a generator: alpha is the amplitude divisor and beta the frequency
// multiplier between its n octaves.
//
// The underlying table is rebuilt from the seed whenever a setting changes.
type Classic struct {
	sources
	alpha, beta float64
	n           int
	seed        int64
	frequency   float64
	gen         *perlin.Perlin
}

// NewClassic returns a Classic generator with alpha 2, beta 2, 3 octaves,
// seed 0 and frequency 1.
func NewClassic() *Classic {
	c := &Classic{
		sources:   newSources("Classic", 0),
		alpha:     DefaultClassicAlpha,
		beta:      DefaultClassicBeta,
		n:         DefaultClassicN,
		frequency: DefaultFrequency,
	}
	c.rebuild()

	return c
}

func (c *Classic) rebuild() {
	c.gen = perlin.NewPerlin(c.alpha, c.beta, int32(c.n), c.seed)
}

// Params returns alpha, beta and the octave count.
func (c *Classic) Params() (alpha, beta float64, n int) { return c.alpha, c.beta, c.n }

// SetParams sets alpha, beta and the octave count. n outside
// [1, MaxOctaveCount] is rejected with ErrOctaveCount.
func (c *Classic) SetParams(alpha, beta float64, n int) error {
	if err := checkOctaves(n); err != nil {
		return fmt.Errorf("module: Classic.SetParams(n=%d): %w", n, err)
	}
	c.alpha, c.beta, c.n = alpha, beta, n
	c.rebuild()

	return nil
}

// Seed returns the table seed.
func (c *Classic) Seed() int64 { return c.seed }

// SetSeed sets the table seed.
func (c *Classic) SetSeed(seed int64) {
	c.seed = seed
	c.rebuild()
}

// Frequency returns the input scale.
func (c *Classic) Frequency() float64 { return c.frequency }

// SetFrequency sets the input scale.
func (c *Classic) SetFrequency(f float64) { c.frequency = f }

// Value implements Module.
func (c *Classic) Value(x, y, z float64) float64 {
	return c.gen.Noise3D(x*c.frequency, y*c.frequency, z*c.frequency)
}

// Simplex generates OpenSimplex noise. It is smoother than Perlin along the
// axes and has no lattice-aligned artifacts.
type Simplex struct {
	sources
	seed      int64
	frequency float64
	gen       opensimplex.Noise
}

// NewSimplex returns a Simplex generator with seed 0 and frequency 1.
func NewSimplex() *Simplex {
	return &Simplex{
		sources:   newSources("Simplex", 0),
		frequency: DefaultFrequency,
		gen:       opensimplex.New(0),
	}
}

// Seed returns the permutation seed.
func (s *Simplex) Seed() int64 { return s.seed }

// SetSeed sets the permutation seed.
func (s *Simplex) SetSeed(seed int64) {
	s.seed = seed
	s.gen = opensimplex.New(seed)
}

// Frequency returns the input scale.
func (s *Simplex) Frequency() float64 { return s.frequency }

// SetFrequency sets the input scale.
func (s *Simplex) SetFrequency(f float64) { s.frequency = f }

// Value implements Module.
func (s *Simplex) Value(x, y, z float64) float64 {
	return s.gen.Eval3(x*s.frequency, y*s.frequency, z*s.frequency)
}
