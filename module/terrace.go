package module

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/lvnoise/interp"
)

// Terrace maps the output of its source onto terrace-like plateaus. Between
// two neighbouring terrace points the value follows a squared ramp, flat at
// the lower point and steep at the upper one. Inverting mirrors the ramp.
type Terrace struct {
	unary
	points []float64
	invert bool
}

// NewTerrace returns a Terrace with no points.
func NewTerrace() *Terrace {
	return &Terrace{unary: newUnary("Terrace")}
}

// AddControlPoint inserts a terrace point keeping the points sorted.
// A value already present is rejected with ErrDuplicatePoint.
func (t *Terrace) AddControlPoint(v float64) error {
	i := sort.SearchFloat64s(t.points, v)
	if i < len(t.points) && t.points[i] == v {
		return fmt.Errorf("module: Terrace.AddControlPoint(%g): %w", v, ErrDuplicatePoint)
	}
	t.points = slices.Insert(t.points, i, v)

	return nil
}

// MakeControlPoints replaces the points with n values evenly spaced over
// [−1, 1]. n below 2 is rejected with ErrTooFewPoints and the points are kept.
func (t *Terrace) MakeControlPoints(n int) error {
	if n < 2 {
		return fmt.Errorf("module: Terrace.MakeControlPoints(%d): %w", n, ErrTooFewPoints)
	}

	step := 2.0 / float64(n-1)
	points := make([]float64, n)
	for i := range points {
		points[i] = -1.0 + float64(i)*step
	}
	t.points = points

	return nil
}

// ClearControlPoints removes every terrace point.
func (t *Terrace) ClearControlPoints() { t.points = nil }

// ControlPoints returns a copy of the terrace points in ascending order.
func (t *Terrace) ControlPoints() []float64 { return slices.Clone(t.points) }

// SetInvert turns terrace inversion on or off.
func (t *Terrace) SetInvert(on bool) { t.invert = on }

// Inverted reports whether the terraces are inverted.
func (t *Terrace) Inverted() bool { return t.invert }

// Value implements Module. It panics if the source is unset or fewer than
// two points are defined.
func (t *Terrace) Value(x, y, z float64) float64 {
	src := t.must(0)
	n := len(t.points)
	if n < 2 {
		panic(fmt.Errorf("module: Terrace.Value: %d points: %w", n, ErrTooFewPoints))
	}

	v := src.Value(x, y, z)

	pos := sort.Search(n, func(i int) bool { return v < t.points[i] })
	i0 := interp.ClampInt(pos-1, 0, n-1)
	i1 := interp.ClampInt(pos, 0, n-1)
	if i0 == i1 {
		return t.points[i1]
	}

	v0, v1 := t.points[i0], t.points[i1]
	alpha := (v - v0) / (v1 - v0)
	if t.invert {
		alpha = 1.0 - alpha
		v0, v1 = v1, v0
	}
	alpha *= alpha

	return interp.Linear(v0, v1, alpha)
}
