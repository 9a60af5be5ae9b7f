// Package lvnoise generates coherent noise by composing small modules into
// a graph: generators produce a value for every 3D point, modifiers and
// combiners transform the values of their source modules.
//
// 🚀 What is in the box?
//
//   - Kernel: integer lattice hashing, gradient and value noise, easing quality
//   - Generators: Perlin, Billow, RidgedMulti, Voronoi, Const, Checkerboard,
//     Cylinders, Spheres, plus Classic (go-perlin) and Simplex (opensimplex)
//   - Modifiers: Curve, Terrace, Abs, Invert, Clamp, Exponent, ScaleBias
//   - Combiners and selectors: Max, Select, Blend
//   - Point transforms: ScalePoint, TranslatePoint, RotatePoint, Turbulence, Displace
//   - Cache: remembers the last evaluated point
//   - Models: plane and sphere projections
//   - Recipes: YAML documents built into validated module graphs
//
// Under the hood the code is organized as:
//
//	interp/           interpolation and easing helpers
//	kernel/           lattice noise primitives and Quality
//	module/           the Module interface and every module type
//	graph/            traversal, validation and statistics of module graphs
//	model/            lower-dimensional projections onto module graphs
//	recipe/           YAML recipes and the graph builder
//	cmd/noisesample/  command-line sampler for recipes
//
// Quick example:
//
//	mountains := module.NewRidgedMulti(module.WithOctaves(6))
//	flat := module.NewConst(-0.5)
//	mask := module.NewPerlin(module.WithFrequency(0.5))
//
//	terrain := module.NewSelect()
//	terrain.SetSourceA(flat)
//	terrain.SetSourceB(mountains)
//	terrain.SetControl(mask)
//	_ = terrain.SetBounds(0, 1000)
//
//	v := terrain.Value(1.25, 0, 3.5)
//
// Evaluation is single-threaded per graph: Value is safe to call from several
// goroutines only when no Cache sits in the graph and nothing is re-wired.
package lvnoise
