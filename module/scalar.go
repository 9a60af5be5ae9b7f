package module

import (
	"fmt"
	"math"
)

// Const outputs the same value everywhere.
type Const struct {
	sources
	value float64
}

// NewConst returns a Const outputting v.
func NewConst(v float64) *Const {
	return &Const{sources: newSources("Const", 0), value: v}
}

// ConstValue returns the constant output.
func (c *Const) ConstValue() float64 { return c.value }

// SetConstValue sets the constant output.
func (c *Const) SetConstValue(v float64) { c.value = v }

// Value implements Module.
func (c *Const) Value(_, _, _ float64) float64 { return c.value }

// Abs outputs the absolute value of its source.
type Abs struct{ unary }

// NewAbs returns an unwired Abs.
func NewAbs() *Abs { return &Abs{unary: newUnary("Abs")} }

// Value implements Module. It panics if the source is unset.
func (a *Abs) Value(x, y, z float64) float64 {
	return math.Abs(a.must(0).Value(x, y, z))
}

// Invert negates its source.
type Invert struct{ unary }

// NewInvert returns an unwired Invert.
func NewInvert() *Invert { return &Invert{unary: newUnary("Invert")} }

// Value implements Module. It panics if the source is unset.
func (n *Invert) Value(x, y, z float64) float64 {
	return -n.must(0).Value(x, y, z)
}

// Max outputs the larger of its two sources.
type Max struct{ sources }

// NewMax returns an unwired Max.
func NewMax() *Max { return &Max{sources: newSources("Max", 2)} }

// SetSources wires both operands.
func (m *Max) SetSources(a, b Module) { m.slots[0], m.slots[1] = a, b }

// Value implements Module. It panics if either source is unset.
func (m *Max) Value(x, y, z float64) float64 {
	a, b := m.must(0), m.must(1)

	return math.Max(a.Value(x, y, z), b.Value(x, y, z))
}

// Clamp limits its source to [lower, upper].
type Clamp struct {
	unary
	lower, upper float64
}

// NewClamp returns an unwired Clamp with bounds [−1, 1].
func NewClamp() *Clamp {
	return &Clamp{unary: newUnary("Clamp"), lower: -1.0, upper: 1.0}
}

// Bounds returns the clamping range.
func (c *Clamp) Bounds() (lower, upper float64) { return c.lower, c.upper }

// SetBounds sets the clamping range. lower must be strictly less than upper,
// otherwise ErrBounds is returned and nothing changes.
func (c *Clamp) SetBounds(lower, upper float64) error {
	if !(lower < upper) {
		return fmt.Errorf("module: Clamp.SetBounds(%g, %g): %w", lower, upper, ErrBounds)
	}
	c.lower, c.upper = lower, upper

	return nil
}

// Value implements Module. It panics if the source is unset.
func (c *Clamp) Value(x, y, z float64) float64 {
	v := c.must(0).Value(x, y, z)
	switch {
	case v < c.lower:
		return c.lower
	case v > c.upper:
		return c.upper
	default:
		return v
	}
}

// Exponent maps its source from [−1, 1] onto [0, 1], raises it to a power and
// maps it back.
type Exponent struct {
	unary
	exponent float64
}

// NewExponent returns an unwired Exponent with exponent 1.
func NewExponent() *Exponent {
	return &Exponent{unary: newUnary("Exponent"), exponent: 1.0}
}

// Exponent returns the power applied to the normalised source value.
func (e *Exponent) Exponent() float64 { return e.exponent }

// SetExponent sets the power applied to the normalised source value.
func (e *Exponent) SetExponent(p float64) { e.exponent = p }

// Value implements Module. It panics if the source is unset.
func (e *Exponent) Value(x, y, z float64) float64 {
	v := e.must(0).Value(x, y, z)

	return math.Pow(math.Abs((v+1.0)/2.0), e.exponent)*2.0 - 1.0
}

// ScaleBias outputs source·scale + bias.
type ScaleBias struct {
	unary
	scale, bias float64
}

// NewScaleBias returns an unwired ScaleBias with scale 1 and bias 0.
func NewScaleBias() *ScaleBias {
	return &ScaleBias{unary: newUnary("ScaleBias"), scale: 1.0}
}

// Scale returns the multiplier.
func (s *ScaleBias) Scale() float64 { return s.scale }

// SetScale sets the multiplier.
func (s *ScaleBias) SetScale(v float64) { s.scale = v }

// Bias returns the offset.
func (s *ScaleBias) Bias() float64 { return s.bias }

// SetBias sets the offset.
func (s *ScaleBias) SetBias(v float64) { s.bias = v }

// Value implements Module. It panics if the source is unset.
func (s *ScaleBias) Value(x, y, z float64) float64 {
	return s.must(0).Value(x, y, z)*s.scale + s.bias
}
