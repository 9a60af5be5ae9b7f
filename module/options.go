// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// options.go: functional options and shared settings of the fractal generators.
//
// Contract (strict):
//   • Options are functional (type FractalOption func(*fractal)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Setters on a built generator RETURN errors instead and keep state on failure.

package module

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/kernel"
)

// Fractal defaults.
const (
	DefaultFrequency   = 1.0
	DefaultLacunarity  = 2.0
	DefaultPersistence = 0.5
	DefaultOctaveCount = 6
	DefaultSeed        = 0
	DefaultQuality     = kernel.Standard

	// MaxOctaveCount bounds every octave and roughness count.
	MaxOctaveCount = 30
)

// fractal carries the settings shared by Perlin, Billow and RidgedMulti.
type fractal struct {
	frequency   float64
	lacunarity  float64
	persistence float64
	octaves     int
	seed        int
	quality     kernel.Quality
}

func defaultFractal() fractal {
	return fractal{
		frequency:   DefaultFrequency,
		lacunarity:  DefaultLacunarity,
		persistence: DefaultPersistence,
		octaves:     DefaultOctaveCount,
		seed:        DefaultSeed,
		quality:     DefaultQuality,
	}
}

func newFractal(opts []FractalOption) fractal {
	f := defaultFractal()
	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// FractalOption customizes a fractal generator at construction.
type FractalOption func(*fractal)

// WithFrequency sets the frequency of the first octave.
func WithFrequency(v float64) FractalOption {
	return func(f *fractal) { f.frequency = v }
}

// WithLacunarity sets the frequency multiplier between successive octaves.
func WithLacunarity(v float64) FractalOption {
	return func(f *fractal) { f.lacunarity = v }
}

// WithPersistence sets the amplitude multiplier between successive octaves.
// RidgedMulti ignores it.
func WithPersistence(v float64) FractalOption {
	return func(f *fractal) { f.persistence = v }
}

// WithOctaves sets the number of octaves. Panics outside [1, MaxOctaveCount].
func WithOctaves(n int) FractalOption {
	if err := checkOctaves(n); err != nil {
		panic(fmt.Errorf("module: WithOctaves(%d): %w", n, err))
	}
	return func(f *fractal) { f.octaves = n }
}

// WithSeed sets the seed of the first octave.
func WithSeed(seed int) FractalOption {
	return func(f *fractal) { f.seed = seed }
}

// WithQuality sets the kernel easing quality.
func WithQuality(q kernel.Quality) FractalOption {
	return func(f *fractal) { f.quality = q }
}

func checkOctaves(n int) error {
	if n < 1 || n > MaxOctaveCount {
		return ErrOctaveCount
	}

	return nil
}

// Frequency returns the frequency of the first octave.
func (f *fractal) Frequency() float64 { return f.frequency }

// SetFrequency sets the frequency of the first octave.
func (f *fractal) SetFrequency(v float64) { f.frequency = v }

// Lacunarity returns the frequency multiplier between octaves.
func (f *fractal) Lacunarity() float64 { return f.lacunarity }

// SetLacunarity sets the frequency multiplier between octaves.
func (f *fractal) SetLacunarity(v float64) { f.lacunarity = v }

// Persistence returns the amplitude multiplier between octaves.
func (f *fractal) Persistence() float64 { return f.persistence }

// SetPersistence sets the amplitude multiplier between octaves.
func (f *fractal) SetPersistence(v float64) { f.persistence = v }

// OctaveCount returns the number of octaves.
func (f *fractal) OctaveCount() int { return f.octaves }

// SetOctaveCount sets the number of octaves. n outside [1, MaxOctaveCount]
// is rejected with ErrOctaveCount and the current count is kept.
func (f *fractal) SetOctaveCount(n int) error {
	if err := checkOctaves(n); err != nil {
		return fmt.Errorf("module: SetOctaveCount(%d): %w", n, err)
	}
	f.octaves = n

	return nil
}

// Seed returns the seed of the first octave.
func (f *fractal) Seed() int { return f.seed }

// SetSeed sets the seed of the first octave. Octave o uses seed+o.
func (f *fractal) SetSeed(seed int) { f.seed = seed }

// Quality returns the kernel easing quality.
func (f *fractal) Quality() kernel.Quality { return f.quality }

// SetQuality sets the kernel easing quality.
func (f *fractal) SetQuality(q kernel.Quality) { f.quality = q }
