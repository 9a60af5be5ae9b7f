package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnoise/module"
)

// walker carries the state of one depth-first traversal.
type walker struct {
	opts   options
	state  map[module.Module]int // White (absent), Gray, Black
	strict bool                  // empty slots are errors
	visit  func(m module.Module) error
	edge   func(parent module.Module, slot int, src module.Module)
	unset  int
}

func newWalker(opts []Option) *walker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &walker{opts: o, state: make(map[module.Module]int)}
}

// run validates root and walks from it.
func (w *walker) run(root module.Module) error {
	if root == nil {
		return ErrNilRoot
	}

	return w.walk(root)
}

// walk visits m's sources, then m itself (post-order).
func (w *walker) walk(m module.Module) error {
	// 1) Cancellation check at entry.
	select {
	case <-w.opts.ctx.Done():
		return w.opts.ctx.Err()
	default:
	}

	// 2) Gray means m is on the stack: a back edge.
	switch w.state[m] {
	case Gray:
		return fmt.Errorf("graph: %T: %w", m, ErrCycleDetected)
	case Black:
		return nil
	}
	w.state[m] = Gray

	// 3) Explore every slot.
	for i := 0; i < m.SourceCount(); i++ {
		src, err := m.Source(i)
		if errors.Is(err, module.ErrSourceNotSet) {
			w.unset++
			if w.strict {
				return fmt.Errorf("graph: %T slot %d: %w", m, i, err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("graph: %T slot %d: %w", m, i, err)
		}
		if w.edge != nil {
			w.edge(m, i, src)
		}
		if err = w.walk(src); err != nil {
			return err
		}
	}

	// 4) Done: mark Black and report.
	w.state[m] = Black
	if w.visit != nil {
		return w.visit(m)
	}

	return nil
}

// Walk calls fn once for every module reachable from root, sources before
// the modules they feed. A module wired under several parents is visited
// once. Empty slots are skipped. Walk stops at the first error returned by
// fn, and returns ErrCycleDetected if a module is reachable from itself.
//
// Modules are identified by interface equality, so every module in the graph
// must have a comparable dynamic type (all module constructors return pointers).
func Walk(root module.Module, fn func(m module.Module) error, opts ...Option) error {
	w := newWalker(opts)
	w.visit = fn

	return w.run(root)
}

// Validate reports whether the graph under root can be evaluated: every
// required slot wired and no cycles. It never calls Value.
//
// An empty slot is reported with an error wrapping module.ErrSourceNotSet
// that names the module type and the slot index.
func Validate(root module.Module, opts ...Option) error {
	w := newWalker(opts)
	w.strict = true

	return w.run(root)
}

// Order returns the modules reachable from root in evaluation-dependency
// order: every module appears after all of its sources.
func Order(root module.Module, opts ...Option) ([]module.Module, error) {
	var order []module.Module
	err := Walk(root, func(m module.Module) error {
		order = append(order, m)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return order, nil
}
