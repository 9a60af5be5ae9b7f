package module

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/lvnoise/interp"
)

// ControlPoint maps an input value of a Curve's source to an output value.
type ControlPoint struct {
	In  float64
	Out float64
}

// Curve remaps the output of its source through a cubic spline defined by at
// least four control points. Inputs beyond the outermost points take the
// nearest boundary output.
type Curve struct {
	unary
	points []ControlPoint
}

// NewCurve returns a Curve with no control points.
func NewCurve() *Curve {
	return &Curve{unary: newUnary("Curve")}
}

// AddControlPoint inserts (in, out) keeping the points sorted by input.
// An input already present is rejected with ErrDuplicatePoint.
func (c *Curve) AddControlPoint(in, out float64) error {
	i := sort.Search(len(c.points), func(i int) bool { return c.points[i].In >= in })
	if i < len(c.points) && c.points[i].In == in {
		return fmt.Errorf("module: Curve.AddControlPoint(%g): %w", in, ErrDuplicatePoint)
	}
	c.points = slices.Insert(c.points, i, ControlPoint{In: in, Out: out})

	return nil
}

// ClearControlPoints removes every control point.
func (c *Curve) ClearControlPoints() { c.points = nil }

// ControlPoints returns a copy of the control points in ascending input order.
func (c *Curve) ControlPoints() []ControlPoint { return slices.Clone(c.points) }

// Value implements Module. It panics if the source is unset or fewer than
// four control points are defined.
func (c *Curve) Value(x, y, z float64) float64 {
	src := c.must(0)
	n := len(c.points)
	if n < 4 {
		panic(fmt.Errorf("module: Curve.Value: %d points: %w", n, ErrTooFewPoints))
	}

	v := src.Value(x, y, z)

	// 1) First point whose input exceeds v.
	pos := sort.Search(n, func(i int) bool { return v < c.points[i].In })

	// 2) Four surrounding points, clamped to the ends.
	i0 := interp.ClampInt(pos-2, 0, n-1)
	i1 := interp.ClampInt(pos-1, 0, n-1)
	i2 := interp.ClampInt(pos, 0, n-1)
	i3 := interp.ClampInt(pos+1, 0, n-1)

	// 3) Outside the curve: flat extrapolation.
	if i1 == i2 {
		return c.points[i1].Out
	}

	in1, in2 := c.points[i1].In, c.points[i2].In
	alpha := (v - in1) / (in2 - in1)

	return interp.Cubic(c.points[i0].Out, c.points[i1].Out, c.points[i2].Out, c.points[i3].Out, alpha)
}
