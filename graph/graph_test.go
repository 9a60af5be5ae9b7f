package graph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/graph"
	"github.com/katalvlaran/lvnoise/module"
)

// diamond builds:  select(A=abs(p), B=invert(p), control=const)
// with the Perlin p shared by both branches.
func diamond() (*module.Select, *module.Perlin) {
	p := module.NewPerlin()
	abs := module.NewAbs()
	abs.SetInput(p)
	inv := module.NewInvert()
	inv.SetInput(p)

	s := module.NewSelect()
	s.SetSourceA(abs)
	s.SetSourceB(inv)
	s.SetControl(module.NewConst(0))

	return s, p
}

// TestWalk_PostOrderSharedOnce visits sources first and shared modules once.
func TestWalk_PostOrderSharedOnce(t *testing.T) {
	root, p := diamond()

	order, err := graph.Order(root)
	require.NoError(t, err)
	require.Len(t, order, 5)
	assert.Same(t, p, order[0])
	assert.Same(t, root, order[len(order)-1])

	seen := map[module.Module]int{}
	for _, m := range order {
		seen[m]++
	}
	assert.Equal(t, 1, seen[p])
}

// TestWalk_StopsOnCallbackError propagates the callback's error.
func TestWalk_StopsOnCallbackError(t *testing.T) {
	root, _ := diamond()
	stop := errors.New("stop")
	calls := 0
	err := graph.Walk(root, func(module.Module) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

// TestValidate_Complete accepts a fully wired acyclic graph.
func TestValidate_Complete(t *testing.T) {
	root, _ := diamond()
	assert.NoError(t, graph.Validate(root))
}

// TestValidate_UnsetSlot names the module and wraps module.ErrSourceNotSet.
func TestValidate_UnsetSlot(t *testing.T) {
	d := module.NewDisplace()
	d.SetOutput(module.NewPerlin())
	d.SetXDisplace(module.NewConst(0))

	err := graph.Validate(d)
	require.Error(t, err)
	assert.ErrorIs(t, err, module.ErrSourceNotSet)
	assert.Contains(t, err.Error(), "*module.Displace slot 2")

	// Walk tolerates the same graph.
	assert.NoError(t, graph.Walk(d, func(module.Module) error { return nil }))
}

// TestValidate_Cycle detects a module reachable from itself.
func TestValidate_Cycle(t *testing.T) {
	a := module.NewAbs()
	b := module.NewInvert()
	a.SetInput(b)
	b.SetInput(a)

	assert.ErrorIs(t, graph.Validate(a), graph.ErrCycleDetected)
	_, err := graph.Order(a)
	assert.ErrorIs(t, err, graph.ErrCycleDetected)
}

// TestNilRootAndCancel cover the argument and context errors.
func TestNilRootAndCancel(t *testing.T) {
	assert.ErrorIs(t, graph.Validate(nil), graph.ErrNilRoot)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	root, _ := diamond()
	assert.ErrorIs(t, graph.Validate(root, graph.WithContext(ctx)), context.Canceled)
}

// TestInspect counts nodes, generators, sharing and depth.
func TestInspect(t *testing.T) {
	root, _ := diamond()
	st, err := graph.Inspect(root)
	require.NoError(t, err)
	assert.Equal(t, graph.Stats{Nodes: 5, Generators: 2, Shared: 1, Depth: 3, Unset: 0}, st)

	c := module.NewCurve()
	st, err = graph.Inspect(c)
	require.NoError(t, err)
	assert.Equal(t, graph.Stats{Nodes: 1, Generators: 0, Shared: 0, Depth: 1, Unset: 1}, st)
}
