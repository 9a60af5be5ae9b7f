// Package kernel implements the deterministic coherent-noise kernel that every
// lvnoise generator is built on.
//
// What:
//
//   - A coordinate hash: integer lattice coordinates and a seed are combined with
//     fixed odd multipliers (1619, 31337, 6971, 1013) in wrapping 32-bit arithmetic,
//     XOR-shift mixed and masked to an 8-bit index.
//   - A gradient table: 256 unit vectors, built once at package initialisation and
//     immutable afterwards.
//   - Gradient noise: dot(gradient[hash], point − corner) · 2.12.
//   - Coherent noise: trilinear interpolation of the eight corner values of the
//     unit lattice cell around a point, with the interpolant eased according
//     to the requested Quality (see below).
//   - Value noise: the same lattice and seed scheme, but the hash is turned into a
//     scalar in (−1, 1] by a multiply-add-mask instead of a gradient dot product.
//   - Range folding: MakeInt32Range folds coordinates whose magnitude reaches 2^30
//     so lattice indices stay representable while the field stays continuous.
//
// Quality easing curves:
//
//	Fast      identity (visible lattice creases)
//	Standard  cubic S-curve 3a² − 2a³
//	Best      quintic S-curve 6a⁵ − 15a⁴ + 10a³ (no second-derivative seams)
//
// Determinism:
//
//	Every function is a pure function of its arguments. There is no hidden state
//	and no use of math/rand, so the same inputs give the same output on every run.
//
// Concurrency:
//
//	The gradient table is written exactly once, before any exported function can
//	run, and is only read afterwards. All functions are safe for unsynchronised
//	concurrent use.
//
// Complexity:
//
//   - GradientNoise3D, ValueNoise3D:                  O(1)
//   - GradientCoherentNoise3D, ValueCoherentNoise3D:  O(1), 8 corner evaluations
package kernel
