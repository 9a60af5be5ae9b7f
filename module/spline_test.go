package module_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/interp"
	"github.com/katalvlaran/lvnoise/module"
)

func newCurve(t *testing.T, src module.Module, points ...module.ControlPoint) *module.Curve {
	t.Helper()
	c := module.NewCurve()
	c.SetInput(src)
	for _, p := range points {
		require.NoError(t, c.AddControlPoint(p.In, p.Out))
	}
	return c
}

var curvePoints = []module.ControlPoint{
	{In: 0.5, Out: 0.7},
	{In: -1, Out: -1},
	{In: 1, Out: 1},
	{In: 0, Out: 0.5},
	{In: -0.5, Out: 0},
}

// TestCurve_SortedInsert keeps points ordered regardless of insertion order.
func TestCurve_SortedInsert(t *testing.T) {
	c := newCurve(t, module.NewConst(0), curvePoints...)
	pts := c.ControlPoints()
	require.Len(t, pts, 5)
	for i := 1; i < len(pts); i++ {
		assert.Less(t, pts[i-1].In, pts[i].In)
	}

	// The returned slice is a copy.
	pts[0].Out = 42
	assert.Equal(t, -1.0, c.ControlPoints()[0].Out)
}

// TestCurve_DuplicateRejected leaves the points unchanged.
func TestCurve_DuplicateRejected(t *testing.T) {
	c := newCurve(t, module.NewConst(0), curvePoints...)
	err := c.AddControlPoint(0, 99)
	assert.ErrorIs(t, err, module.ErrDuplicatePoint)
	assert.Len(t, c.ControlPoints(), 5)
	assert.Equal(t, 0.5, c.ControlPoints()[2].Out)
}

// TestCurve_ExactAtControlPoints returns each point's output at its input.
func TestCurve_ExactAtControlPoints(t *testing.T) {
	src := module.NewConst(0)
	c := newCurve(t, src, curvePoints...)
	for _, p := range curvePoints {
		src.SetConstValue(p.In)
		assert.Equal(t, p.Out, c.Value(0, 0, 0), "input %v", p.In)
	}
}

// TestCurve_FlatOutside reuses the boundary outputs beyond the outermost points.
func TestCurve_FlatOutside(t *testing.T) {
	src := module.NewConst(-5)
	c := newCurve(t, src, curvePoints...)
	assert.Equal(t, -1.0, c.Value(0, 0, 0))

	src.SetConstValue(5)
	assert.Equal(t, 1.0, c.Value(0, 0, 0))
}

// TestCurve_BetweenPoints matches a cubic through the four surrounding outputs.
func TestCurve_BetweenPoints(t *testing.T) {
	src := module.NewConst(0.25)
	c := newCurve(t, src, curvePoints...)
	want := interp.Cubic(0, 0.5, 0.7, 1, 0.5)
	assert.InDelta(t, want, c.Value(0, 0, 0), 1e-12)
}

// TestCurve_Preconditions panics when unwired or with fewer than four points.
func TestCurve_Preconditions(t *testing.T) {
	requirePanicsWith(t, module.ErrSourceNotSet, func() { module.NewCurve().Value(0, 0, 0) })

	c := newCurve(t, module.NewConst(0), curvePoints[:3]...)
	requirePanicsWith(t, module.ErrTooFewPoints, func() { c.Value(0, 0, 0) })

	c.ClearControlPoints()
	assert.Empty(t, c.ControlPoints())
}

// TestTerrace_TwoPoints reduces to lerp(−1, 1, alpha²).
func TestTerrace_TwoPoints(t *testing.T) {
	src := module.NewConst(0)
	tr := module.NewTerrace()
	tr.SetInput(src)
	require.NoError(t, tr.AddControlPoint(1))
	require.NoError(t, tr.AddControlPoint(-1))

	for _, v := range []float64{-0.9, -0.3, 0, 0.2, 0.75} {
		src.SetConstValue(v)
		alpha := (v + 1) / 2
		assert.InDelta(t, interp.Linear(-1, 1, alpha*alpha), tr.Value(0, 0, 0), 1e-12, "v=%v", v)
	}
}

// TestTerrace_Inverted mirrors the ramp: complement alpha and swap the bracket.
func TestTerrace_Inverted(t *testing.T) {
	src := module.NewConst(0.2)
	tr := module.NewTerrace()
	tr.SetInput(src)
	require.NoError(t, tr.MakeControlPoints(2))
	tr.SetInvert(true)
	assert.True(t, tr.Inverted())

	alpha := 1 - 0.6
	assert.InDelta(t, interp.Linear(1, -1, alpha*alpha), tr.Value(0, 0, 0), 1e-12)
}

// TestTerrace_PlateausAndOutside returns the point itself on and beyond each point.
func TestTerrace_PlateausAndOutside(t *testing.T) {
	src := module.NewConst(0)
	tr := module.NewTerrace()
	tr.SetInput(src)
	require.NoError(t, tr.MakeControlPoints(3))

	assert.Equal(t, 0.0, tr.Value(0, 0, 0))

	src.SetConstValue(3)
	assert.Equal(t, 1.0, tr.Value(0, 0, 0))

	src.SetConstValue(-3)
	assert.Equal(t, -1.0, tr.Value(0, 0, 0))
}

// TestTerrace_MakeControlPoints spaces points evenly and validates the count.
func TestTerrace_MakeControlPoints(t *testing.T) {
	tr := module.NewTerrace()
	require.NoError(t, tr.MakeControlPoints(5))
	want := []float64{-1, -0.5, 0, 0.5, 1}
	got := tr.ControlPoints()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}

	assert.ErrorIs(t, tr.MakeControlPoints(1), module.ErrTooFewPoints)
	assert.Len(t, tr.ControlPoints(), 5)

	assert.ErrorIs(t, tr.AddControlPoint(0.5), module.ErrDuplicatePoint)
}

// TestTerrace_Preconditions panics below two points.
func TestTerrace_Preconditions(t *testing.T) {
	tr := module.NewTerrace()
	tr.SetInput(module.NewConst(0))
	require.NoError(t, tr.AddControlPoint(0))
	requirePanicsWith(t, module.ErrTooFewPoints, func() { tr.Value(0, 0, 0) })
}
