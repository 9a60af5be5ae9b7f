package module

import (
	"fmt"

	"github.com/katalvlaran/lvnoise/interp"
)

// Select outputs source B where the control value lies inside the selection
// range (lower, upper) and source A elsewhere. A positive edge falloff
// replaces each hard boundary with an S-curve blend over
// [bound − falloff, bound + falloff].
type Select struct {
	selector
	lower, upper float64
	falloff      float64
}

// NewSelect returns a Select with bounds [−1, 1] and no edge falloff.
func NewSelect() *Select {
	return &Select{selector: newSelector("Select"), lower: -1.0, upper: 1.0}
}

// Bounds returns the lower and upper bound of the selection range.
func (s *Select) Bounds() (lower, upper float64) { return s.lower, s.upper }

// SetBounds sets the selection range. lower must be strictly less than upper,
// otherwise ErrBounds is returned and nothing changes. The edge falloff is
// re-clamped to the new range.
func (s *Select) SetBounds(lower, upper float64) error {
	if !(lower < upper) {
		return fmt.Errorf("module: Select.SetBounds(%g, %g): %w", lower, upper, ErrBounds)
	}
	s.lower, s.upper = lower, upper
	s.SetEdgeFalloff(s.falloff)

	return nil
}

// EdgeFalloff returns the half-width of the transition bands.
func (s *Select) EdgeFalloff() float64 { return s.falloff }

// SetEdgeFalloff sets the half-width of the transition bands, clamped to
// [0, (upper − lower)/2] so the two bands never overlap.
func (s *Select) SetEdgeFalloff(f float64) {
	half := (s.upper - s.lower) / 2
	switch {
	case f > half:
		f = half
	case f < 0:
		f = 0
	}
	s.falloff = f
}

// Value implements Module. It panics if any of the three sources is unset.
func (s *Select) Value(x, y, z float64) float64 {
	a, b := s.must(slotA), s.must(slotB)
	c := s.must(slotControl).Value(x, y, z)

	if s.falloff <= 0 {
		if s.lower < c && c < s.upper {
			return b.Value(x, y, z)
		}
		return a.Value(x, y, z)
	}

	f := s.falloff
	switch {
	case c < s.lower-f:
		return a.Value(x, y, z)
	case c < s.lower+f:
		alpha := interp.SCurve3((c - (s.lower - f)) / (2 * f))
		return interp.Linear(a.Value(x, y, z), b.Value(x, y, z), alpha)
	case c < s.upper-f:
		return b.Value(x, y, z)
	case c < s.upper+f:
		alpha := interp.SCurve3((c - (s.upper - f)) / (2 * f))
		return interp.Linear(b.Value(x, y, z), a.Value(x, y, z), alpha)
	default:
		return a.Value(x, y, z)
	}
}

// Blend interpolates linearly between sources A and B, using the control
// value mapped from [−1, 1] onto [0, 1] as the weight of B.
type Blend struct {
	selector
}

// NewBlend returns an unwired Blend.
func NewBlend() *Blend {
	return &Blend{selector: newSelector("Blend")}
}

// Value implements Module. It panics if any of the three sources is unset.
func (b *Blend) Value(x, y, z float64) float64 {
	a, bb := b.must(slotA), b.must(slotB)
	alpha := (b.must(slotControl).Value(x, y, z) + 1.0) / 2.0

	return interp.Linear(a.Value(x, y, z), bb.Value(x, y, z), alpha)
}
