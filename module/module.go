// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// module.go: the node contract and the slot storage shared by every module.
//
// Contract:
//   • Arity is fixed by the constructor and never changes.
//   • SetSource/Source validate the index and RETURN ErrSourceIndex.
//   • Value never validates lazily through errors: a missing source panics.

package module

import "fmt"

// Module is a node of a noise graph: a function from a 3D point to a scalar
// with a fixed number of positional sources.
//
// The same Module may be wired under several parents. Wiring a module into
// its own ancestry makes Value recurse without bound.
type Module interface {
	// Value evaluates the module at (x, y, z).
	Value(x, y, z float64) float64

	// SourceCount returns the fixed number of source slots.
	SourceCount() int

	// Source returns the module wired into slot i.
	Source(i int) (Module, error)

	// SetSource wires src into slot i, replacing any previous module.
	// A nil src clears the slot.
	SetSource(i int, src Module) error
}

// sources holds the positional slots of a module. kind names the owning
// module type in error messages.
type sources struct {
	kind  string
	slots []Module
}

func newSources(kind string, n int) sources {
	return sources{kind: kind, slots: make([]Module, n)}
}

// SourceCount returns the fixed number of source slots.
func (s *sources) SourceCount() int { return len(s.slots) }

// Source returns the module wired into slot i.
// It returns ErrSourceIndex for i outside the slot range and ErrSourceNotSet
// for an empty slot.
func (s *sources) Source(i int) (Module, error) {
	if i < 0 || i >= len(s.slots) {
		return nil, fmt.Errorf("module: %s.Source(%d): %w", s.kind, i, ErrSourceIndex)
	}
	if s.slots[i] == nil {
		return nil, fmt.Errorf("module: %s.Source(%d): %w", s.kind, i, ErrSourceNotSet)
	}

	return s.slots[i], nil
}

// SetSource wires src into slot i. A nil src clears the slot.
func (s *sources) SetSource(i int, src Module) error {
	if i < 0 || i >= len(s.slots) {
		return fmt.Errorf("module: %s.SetSource(%d): %w", s.kind, i, ErrSourceIndex)
	}
	s.slots[i] = src

	return nil
}

// must returns slot i for evaluation and panics if it is empty.
func (s *sources) must(i int) Module {
	if m := s.slots[i]; m != nil {
		return m
	}
	panic(fmt.Errorf("module: %s.Value: slot %d: %w", s.kind, i, ErrSourceNotSet))
}

// unary is the slot storage of single-source modifiers and transformers.
type unary struct {
	sources
}

func newUnary(kind string) unary {
	return unary{sources: newSources(kind, 1)}
}

// SetInput wires the single source module.
func (u *unary) SetInput(src Module) { u.slots[0] = src }

// Input returns the single source module.
func (u *unary) Input() (Module, error) { return u.Source(0) }

// selector is the slot storage of three-source modules: two candidate
// outputs and a control module.
type selector struct {
	sources
}

const (
	slotA       = 0
	slotB       = 1
	slotControl = 2
)

func newSelector(kind string) selector {
	return selector{sources: newSources(kind, 3)}
}

// SetSourceA wires the first candidate output (slot 0).
func (s *selector) SetSourceA(src Module) { s.slots[slotA] = src }

// SetSourceB wires the second candidate output (slot 1).
func (s *selector) SetSourceB(src Module) { s.slots[slotB] = src }

// SetControl wires the control module (slot 2).
func (s *selector) SetControl(src Module) { s.slots[slotControl] = src }

// SourceA returns the first candidate output.
func (s *selector) SourceA() (Module, error) { return s.Source(slotA) }

// SourceB returns the second candidate output.
func (s *selector) SourceB() (Module, error) { return s.Source(slotB) }

// Control returns the control module.
func (s *selector) Control() (Module, error) { return s.Source(slotControl) }
