// Package tsp provides Travelling Salesman tour-length solvers over small city
// sets, all sharing one evaluator (TourLength) and the geom metric.
//
// Solvers:
//
//   - Naive      - score the sequence exactly as given.          O(n)
//   - Sorted     - canonical order (y, then x), then score.        O(n log n)
//   - Greedy     - nearest neighbour from a near-middle start.     O(n²)
//   - BruteForce - every permutation with the first city fixed.    O(n!·n)
//   - Grid       - closed-form snake path over a complete lattice. O(n)
//
// Every solver takes the caller's []geom.City, may reorder it in place, and
// returns the closed tour length (the last city connects back to the first).
// Tours of 0 or 1 cities are valid and score 0.
//
// Grid is the only solver with preconditions. It returns NoSolution
// (math.MaxFloat64) when they fail; ValidateGrid reports the reason as one of
// the sentinel errors from types.go.
//
// Tie-breaks compare distances with exact floating-point equality, so results
// are reproducible on integer coordinate sets. Solvers keep no state between
// calls; a given slice must not be shared by concurrent callers.
//
// BruteForce is an exactness oracle for small instances (n ≲ 12); Solve
// refuses it beyond MaxBruteForceCities.
package tsp
