package module_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/module"
)

// TestTurbulence_Defaults: frequency 1, power 1, roughness 3, seed 0.
func TestTurbulence_Defaults(t *testing.T) {
	tb := module.NewTurbulence()
	assert.Equal(t, 1.0, tb.Frequency())
	assert.Equal(t, 1.0, tb.Power())
	assert.Equal(t, 3, tb.Roughness())
	assert.Equal(t, 0, tb.Seed())
}

// TestTurbulence_SetRoughness rejects out-of-range counts and keeps the old one.
func TestTurbulence_SetRoughness(t *testing.T) {
	tb := module.NewTurbulence()
	assert.ErrorIs(t, tb.SetRoughness(0), module.ErrOctaveCount)
	assert.ErrorIs(t, tb.SetRoughness(31), module.ErrOctaveCount)
	assert.Equal(t, 3, tb.Roughness())

	require.NoError(t, tb.SetRoughness(5))
	assert.Equal(t, 5, tb.Roughness())
}

// TestTurbulence_ZeroPowerIsIdentity evaluates the source at the original point.
func TestTurbulence_ZeroPowerIsIdentity(t *testing.T) {
	tb := module.NewTurbulence()
	tb.SetInput(linear)
	tb.SetPower(0)
	assert.Equal(t, linear.Value(1.5, -2, 0.25), tb.Value(1.5, -2, 0.25))
}

// TestTurbulence_Displacement matches three Perlin fields seeded seed..seed+2
// sampled at fixed fractional offsets.
func TestTurbulence_Displacement(t *testing.T) {
	const seed, power = 11, 0.75
	tb := module.NewTurbulence()
	tb.SetInput(linear)
	tb.SetSeed(seed)
	tb.SetPower(power)
	tb.SetFrequency(2)

	fx := module.NewPerlin(module.WithSeed(seed), module.WithOctaves(3), module.WithFrequency(2))
	fy := module.NewPerlin(module.WithSeed(seed+1), module.WithOctaves(3), module.WithFrequency(2))
	fz := module.NewPerlin(module.WithSeed(seed+2), module.WithOctaves(3), module.WithFrequency(2))

	x, y, z := 0.4, -1.3, 2.2
	dx := fx.Value(x+12414.0/65536.0, y+65124.0/65536.0, z+31337.0/65536.0)
	dy := fy.Value(x+26519.0/65536.0, y+18128.0/65536.0, z+60493.0/65536.0)
	dz := fz.Value(x+53820.0/65536.0, y+11213.0/65536.0, z+44845.0/65536.0)

	want := linear.Value(x+dx*power, y+dy*power, z+dz*power)
	assert.InDelta(t, want, tb.Value(x, y, z), 1e-12)
}

// TestDisplace adds each offset source to its coordinate before evaluating the output.
func TestDisplace(t *testing.T) {
	d := module.NewDisplace()
	d.SetOutput(linear)
	d.SetDisplaceSources(module.NewConst(1), module.NewConst(2), module.NewConst(3))

	assert.Equal(t, linear.Value(1, 2, 3), d.Value(0, 0, 0))
	assert.Equal(t, linear.Value(1.5, 1, 3.25), d.Value(0.5, -1, 0.25))

	out, err := d.Output()
	require.NoError(t, err)
	assert.NotNil(t, out)
	_, err = d.ZDisplace()
	require.NoError(t, err)

	assert.ErrorIs(t, d.SetSource(4, linear), module.ErrSourceIndex)
}

// TestDisplace_OffsetsSeeOriginalPoint: offset sources are evaluated at the undisplaced point.
func TestDisplace_OffsetsSeeOriginalPoint(t *testing.T) {
	src := &mockSource{}
	src.On("Value", 0.5, 0.25, -1.0).Return(0.0)

	d := module.NewDisplace()
	d.SetOutput(linear)
	d.SetDisplaceSources(src, src, src)
	d.Value(0.5, 0.25, -1)

	src.AssertNumberOfCalls(t, "Value", 3)
	src.AssertExpectations(t)
}

// TestCache_SecondCallHits invokes the wrapped source once for a repeated point.
func TestCache_SecondCallHits(t *testing.T) {
	src := &mockSource{}
	src.On("Value", mock.Anything, mock.Anything, mock.Anything).Return(0.5)

	c := module.NewCache()
	c.SetInput(src)

	assert.Equal(t, 0.5, c.Value(1, 2, 3))
	assert.Equal(t, 0.5, c.Value(1, 2, 3))
	src.AssertNumberOfCalls(t, "Value", 1)

	c.Value(1, 2, 3.0000001)
	src.AssertNumberOfCalls(t, "Value", 2)
}

// TestCache_SignedZeroMisses: +0 and −0 are different bit patterns.
func TestCache_SignedZeroMisses(t *testing.T) {
	src := &mockSource{}
	src.On("Value", mock.Anything, mock.Anything, mock.Anything).Return(1.0)

	c := module.NewCache()
	c.SetInput(src)

	negZero := 0.0
	negZero = -negZero
	c.Value(0, 0, 0)
	c.Value(negZero, 0, 0)
	src.AssertNumberOfCalls(t, "Value", 2)
}

// TestCache_RewiringInvalidates through both SetInput and SetSource.
func TestCache_RewiringInvalidates(t *testing.T) {
	src := &mockSource{}
	src.On("Value", mock.Anything, mock.Anything, mock.Anything).Return(0.5)

	c := module.NewCache()
	c.SetInput(src)
	c.Value(1, 1, 1)

	c.SetInput(src)
	c.Value(1, 1, 1)
	src.AssertNumberOfCalls(t, "Value", 2)

	require.NoError(t, c.SetSource(0, src))
	c.Value(1, 1, 1)
	src.AssertNumberOfCalls(t, "Value", 3)

	assert.ErrorIs(t, c.SetSource(1, src), module.ErrSourceIndex)
	c.Value(1, 1, 1)
	src.AssertNumberOfCalls(t, "Value", 3)
}
