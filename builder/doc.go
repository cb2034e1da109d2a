// Package builder generates city sets for the citytour solvers.
//
//   - Grid(width, height)  - a complete lattice, x ∈ 1..width, y ∈ 1..height,
//     emitted in canonical (row-major) order.
//   - Random(n, opts...)   - n cities with coordinates in 1..maxCoord drawn
//     from a seeded math/rand stream.
//
// Options follow the functional style (BuilderOption). Randomness is always
// explicit: the default stream is seeded with DefaultSeed, never with the
// clock, so fixtures are reproducible.
//
// Errors are sentinels from errors.go wrapped with the method name; match
// them with errors.Is.
package builder
