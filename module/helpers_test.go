package module_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/module"
)

// field adapts a plain function into a source-less Module.
type field func(x, y, z float64) float64

func (f field) Value(x, y, z float64) float64 { return f(x, y, z) }

func (field) SourceCount() int { return 0 }

func (field) Source(int) (module.Module, error) { return nil, module.ErrSourceIndex }

func (field) SetSource(int, module.Module) error { return module.ErrSourceIndex }

// linear is a source whose value encodes the point it was evaluated at.
var linear = field(func(x, y, z float64) float64 { return x + 2*y + 3*z })

// mockSource records every evaluation.
type mockSource struct {
	mock.Mock
}

func (m *mockSource) Value(x, y, z float64) float64 {
	args := m.Called(x, y, z)
	return args.Get(0).(float64)
}

func (m *mockSource) SourceCount() int { return 0 }

func (m *mockSource) Source(int) (module.Module, error) { return nil, module.ErrSourceIndex }

func (m *mockSource) SetSource(int, module.Module) error { return module.ErrSourceIndex }

// requirePanicsWith runs fn and checks it panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, target)
	}()
	fn()
}
