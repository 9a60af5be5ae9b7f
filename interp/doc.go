// Package interp provides the scalar interpolation and easing primitives
// shared by the noise kernel and the spline/selector modules.
//
// What:
//
//   - Linear:  (1−a)·n0 + a·n1
//   - Cubic:   Catmull-Rom style cubic through four samples, a ∈ [0,1]
//     interpolates between the two inner samples n1 → n2
//   - SCurve3: cubic S-curve 3a² − 2a³ (first derivative zero at 0 and 1)
//   - SCurve5: quintic S-curve 6a⁵ − 15a⁴ + 10a³ (first and second
//     derivatives zero at 0 and 1)
//
// All functions are pure, allocation-free and safe for concurrent use.
//
// Complexity: O(1) for every function.
package interp
