// Package model projects lower-dimensional inputs onto the 3D point a module
// graph expects.
//
// Plane samples the y = 0 plane; Sphere samples the unit sphere from latitude
// and longitude in degrees.
package model

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvnoise/module"
)

// ErrNoModule is returned when a projection has no module to evaluate.
var ErrNoModule = errors.New("model: module not set")

// Plane evaluates a module on the y = 0 plane.
type Plane struct {
	Module module.Module
}

// NewPlane returns a Plane over m.
func NewPlane(m module.Module) *Plane { return &Plane{Module: m} }

// Value returns the module's value at (x, 0, z).
func (p *Plane) Value(x, z float64) (float64, error) {
	if p.Module == nil {
		return 0, ErrNoModule
	}

	return p.Module.Value(x, 0, z), nil
}

// Sphere evaluates a module on the surface of the unit sphere.
type Sphere struct {
	Module module.Module
}

// NewSphere returns a Sphere over m.
func NewSphere(m module.Module) *Sphere { return &Sphere{Module: m} }

// Value returns the module's value at the point with the given latitude and
// longitude, both in degrees.
func (s *Sphere) Value(lat, lon float64) (float64, error) {
	if s.Module == nil {
		return 0, ErrNoModule
	}
	x, y, z := LatLonToXYZ(lat, lon)

	return s.Module.Value(x, y, z), nil
}

// LatLonToXYZ converts latitude and longitude in degrees to a point on the
// unit sphere: x = cos(lat)·cos(lon), y = sin(lat), z = cos(lat)·sin(lon).
func LatLonToXYZ(lat, lon float64) (x, y, z float64) {
	latSin, latCos := math.Sincos(lat * math.Pi / 180)
	lonSin, lonCos := math.Sincos(lon * math.Pi / 180)

	return latCos * lonCos, latSin, latCos * lonSin
}
