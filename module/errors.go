// SPDX-License-Identifier: MIT
// Package module: sentinel error set.
//
// Setters and wiring calls RETURN these sentinels (wrapped with call context)
// and leave the receiver untouched. Value panics with an error wrapping
// ErrSourceNotSet or ErrTooFewPoints: evaluating a half-wired graph is a
// programmer error and the single call is aborted. Tests match with errors.Is.

package module

import "errors"

var (
	// ErrSourceIndex indicates a source slot index outside [0, SourceCount()).
	ErrSourceIndex = errors.New("module: source index out of range")

	// ErrSourceNotSet indicates a required source slot that has not been wired.
	ErrSourceNotSet = errors.New("module: source not set")

	// ErrOctaveCount indicates an octave (or roughness) count outside [1, 30].
	ErrOctaveCount = errors.New("module: octave count out of range")

	// ErrDuplicatePoint indicates a control or terrace point whose value is already present.
	ErrDuplicatePoint = errors.New("module: duplicate control point")

	// ErrTooFewPoints indicates a spline module below its minimum point count.
	ErrTooFewPoints = errors.New("module: too few control points")

	// ErrBounds indicates a lower bound that is not strictly below the upper bound.
	ErrBounds = errors.New("module: lower bound must be less than upper bound")
)
