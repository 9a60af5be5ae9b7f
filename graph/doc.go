// Package graph inspects module graphs without evaluating them.
//
// What:
//
//   - Walk: post-order traversal of every module reachable from a root,
//     visiting shared modules once.
//   - Order: the same traversal collected into a slice, sources first.
//   - Validate: three-colour DFS (White, Gray, Black) that rejects empty
//     required slots and cycles before the first Value call.
//   - Inspect: node, generator, shared-module and depth counts.
//
// Evaluation itself never consults this package: a graph that fails
// Validate still panics or recurses forever when evaluated.
//
// Errors:
//
//   - ErrNilRoot          root module is nil
//   - ErrCycleDetected    a module is reachable from itself
//   - module.ErrSourceNotSet (wrapped, Validate only) an empty slot
//   - context errors      traversal cancelled via WithContext
//
// Complexity:
//
//   - Walk, Order, Validate, Inspect: Time O(V+E), Memory O(V)
package graph
