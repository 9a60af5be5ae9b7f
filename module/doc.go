// Package module implements composable coherent-noise modules: small nodes
// that each map a 3D point to a scalar and can be wired together into a graph.
//
// What:
//
//   - Module: the node contract. Value(x, y, z), a fixed SourceCount, and
//     positional Source/SetSource slots. Named accessors (SetInput, SetControl,
//     SetXDisplace, ...) map onto the fixed slots of each type.
//   - Generators (no sources): Perlin, Billow, RidgedMulti (fractal octave sums
//     over the kernel), Voronoi (cell noise), Const, Checkerboard, Cylinders,
//     Spheres, Classic (go-perlin) and Simplex (OpenSimplex).
//   - Modifiers (one source): Curve, Terrace, Abs, Invert, Clamp, Exponent,
//     ScaleBias.
//   - Combiners and selectors: Max, Select, Blend.
//   - Transformers: Turbulence, Displace, ScalePoint, TranslatePoint,
//     RotatePoint.
//   - Cache: remembers the last evaluated point.
//
// Wiring:
//
//	The same module may feed several parents; the graph only holds references.
//	Cycles are not detected during evaluation and recurse without bound; use
//	graph.Validate to check a graph before evaluating it.
//
// Errors:
//
//   - Setters RETURN ErrOctaveCount, ErrDuplicatePoint, ErrTooFewPoints or
//     ErrBounds and leave the module unchanged.
//   - Source/SetSource RETURN ErrSourceIndex (and Source ErrSourceNotSet).
//     A bad slot index is a recoverable caller error here, not a fatal one,
//     so these indexers never panic.
//   - Value PANICS with an error wrapping ErrSourceNotSet or ErrTooFewPoints
//     when the module is not fully configured.
//   - Option constructors (WithOctaves) PANIC on out-of-range input.
//
// Concurrency:
//
//	Evaluation is single-threaded and allocation-free. A graph without Cache
//	that is not being reconfigured may be evaluated from several goroutines.
//
// Complexity:
//
//   - Perlin, Billow, RidgedMulti: O(octaves) kernel calls
//   - Voronoi:                     375 value-noise lookups (125 cells)
//   - Curve, Terrace:              O(log points) + O(source)
//   - AddControlPoint:             O(points)
package module
