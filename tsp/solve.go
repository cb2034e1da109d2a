// Package tsp - dispatcher over the ordering-based solvers.
//
// Solve routes an Algorithm to its Solver and guards BruteForce against
// instances it cannot finish. Grid is not routed here: it needs the entrance
// and exit cities and reports failure through NoSolution.
package tsp

import "github.com/katalvlaran/citytour/geom"

// Solvers maps each routable Algorithm to its Solver.
var Solvers = map[Algorithm]Solver{
	AlgoNaive:      Naive,
	AlgoSorted:     Sorted,
	AlgoGreedy:     Greedy,
	AlgoBruteForce: BruteForce,
}

// Solve runs algo on cities and returns the closed tour length.
//
// Errors:
//   - ErrUnsupportedAlgorithm for an Algorithm outside Solvers.
//   - ErrTooManyCities when BruteForce is asked for more than
//     MaxBruteForceCities cities; cities is left untouched.
//
// Complexity: that of the chosen solver.
func Solve(algo Algorithm, cities []geom.City) (float64, error) {
	solver, ok := Solvers[algo]
	if !ok {
		return 0, ErrUnsupportedAlgorithm
	}
	if algo == AlgoBruteForce && len(cities) > MaxBruteForceCities {
		return 0, ErrTooManyCities
	}

	return solver(cities), nil
}
