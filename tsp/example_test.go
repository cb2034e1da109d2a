// Package tsp_test provides runnable, deterministic examples for citytour/tsp.
package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/citytour/builder"
	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/tsp"
)

// ExampleGrid solves the 4×3 lattice entering at (1,1) and leaving at (1,2).
func ExampleGrid() {
	cities, _ := builder.Grid(4, 3)

	fmt.Printf("naive  %.4f\n", tsp.Naive(cities))
	fmt.Printf("greedy %.4f\n", tsp.Greedy(cities))
	fmt.Printf("grid   %.4f\n", tsp.Grid(cities, geom.NewCity(1, 1), geom.NewCity(1, 2)))
	fmt.Println(cities[0], cities[len(cities)-1])
	// Output:
	// naive  18.9301
	// greedy 15.8416
	// grid   12.0000
	// City (1, 1) City (1, 2)
}

// ExampleBruteForce checks a 3×2 lattice exhaustively.
func ExampleBruteForce() {
	cities, _ := builder.Grid(3, 2)

	fmt.Printf("%.1f\n", tsp.BruteForce(cities))
	fmt.Println(cities)
	// Output:
	// 6.0
	// [City (1, 1) City (2, 1) City (3, 1) City (3, 2) City (2, 2) City (1, 2)]
}

// ExampleValidateGrid reports why a lattice is unsolvable.
func ExampleValidateGrid() {
	cities, _ := builder.Grid(4, 3)

	err := tsp.ValidateGrid(cities, geom.NewCity(2, 2), geom.NewCity(2, 1))
	fmt.Println(err)
	fmt.Println(tsp.Grid(cities, geom.NewCity(2, 2), geom.NewCity(2, 1)) == tsp.NoSolution)
	// Output:
	// tsp: endpoint not on grid boundary
	// true
}
