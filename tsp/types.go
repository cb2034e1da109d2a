package tsp

import (
	"errors"
	"math"

	"github.com/katalvlaran/citytour/geom"
)

// NoSolution is the length Grid returns when its preconditions fail.
const NoSolution = math.MaxFloat64

// MaxBruteForceCities bounds the instance size Solve accepts for BruteForce.
const MaxBruteForceCities = 12

// Sentinel errors. Grid preconditions are reported by ValidateGrid.
var (
	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTooManyCities indicates an instance too large for exhaustive search.
	ErrTooManyCities = errors.New("tsp: too many cities for brute force")

	// ErrOddCityCount indicates a grid instance with an odd number of cities.
	ErrOddCityCount = errors.New("tsp: odd city count")

	// ErrEndpointNotFound indicates an entrance or exit matching no city.
	ErrEndpointNotFound = errors.New("tsp: endpoint not found")

	// ErrEndpointAmbiguous indicates an entrance or exit matching several cities.
	ErrEndpointAmbiguous = errors.New("tsp: endpoint matches more than one city")

	// ErrSameEndpoint indicates entrance and exit resolve to the same city.
	ErrSameEndpoint = errors.New("tsp: entrance equals exit")

	// ErrNotOnBoundary indicates an endpoint off the left column, right column
	// and bottom row of the bounding box.
	ErrNotOnBoundary = errors.New("tsp: endpoint not on grid boundary")

	// ErrNotAdjacent indicates entrance and exit are not exactly 1 apart.
	ErrNotAdjacent = errors.New("tsp: entrance and exit not adjacent")

	// ErrIncompleteGrid indicates the cities do not fill their bounding box
	// exactly once per cell.
	ErrIncompleteGrid = errors.New("tsp: cities do not form a complete grid")

	// ErrNoHamiltonianPath indicates a lattice whose shape admits no path
	// between the given endpoints covering every cell.
	ErrNoHamiltonianPath = errors.New("tsp: no hamiltonian path between endpoints")
)

// Solver scores a tour, possibly reordering it in place.
type Solver func(cities []geom.City) float64

// Algorithm selects a Solver in Solve.
type Algorithm int

const (
	// AlgoNaive scores the input order.
	AlgoNaive Algorithm = iota
	// AlgoSorted scores the canonical order.
	AlgoSorted
	// AlgoGreedy runs nearest neighbour.
	AlgoGreedy
	// AlgoBruteForce runs exhaustive search.
	AlgoBruteForce
)

// String returns the algorithm's CLI name.
func (a Algorithm) String() string {
	switch a {
	case AlgoNaive:
		return "naive"
	case AlgoSorted:
		return "sorted"
	case AlgoGreedy:
		return "greedy"
	case AlgoBruteForce:
		return "bruteforce"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a CLI name back to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range []Algorithm{AlgoNaive, AlgoSorted, AlgoGreedy, AlgoBruteForce} {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, ErrUnsupportedAlgorithm
}
