package graph

import (
	"context"
	"errors"
)

// Visitation states of the three-colour depth-first search.
const (
	White = iota // not visited yet
	Gray         // on the current recursion stack
	Black        // fully explored
)

var (
	// ErrNilRoot is returned when the root module is nil.
	ErrNilRoot = errors.New("graph: root module is nil")

	// ErrCycleDetected indicates a module reachable from itself.
	ErrCycleDetected = errors.New("graph: cycle detected")
)

// Option configures Walk, Validate and Inspect.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a cancellation context checked at every module.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Stats summarises a module graph.
type Stats struct {
	// Nodes is the number of distinct modules reachable from the root.
	Nodes int

	// Generators is the number of reachable modules without sources.
	Generators int

	// Shared is the number of modules wired under more than one parent slot.
	Shared int

	// Depth is the number of modules on the longest root-to-leaf path.
	Depth int

	// Unset is the number of empty source slots.
	Unset int
}
