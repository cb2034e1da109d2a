// Package tsp - tour evaluation shared by every solver.
package tsp

import (
	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/order"
)

// TourLength returns the closed length of cities in sequence order: the sum of
// consecutive distances plus the edge from the last city back to the first.
// Empty and single-city tours have length 0. Duplicate coordinates are
// distinct seats and contribute zero-length edges.
//
// Complexity: O(n) time, O(1) space.
func TourLength(cities []geom.City) float64 {
	var n = len(cities)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 1; i < n; i++ {
		sum += cities[i-1].Dist(cities[i])
	}

	// Closing edge.
	return sum + cities[n-1].Dist(cities[0])
}

// Naive scores the tour in the order given.
//
// Complexity: O(n).
func Naive(cities []geom.City) float64 {
	return TourLength(cities)
}

// Sorted reorders the tour canonically (y, then x) and scores it. It is a
// baseline showing the effect of one deterministic reordering.
//
// Complexity: O(n log n).
func Sorted(cities []geom.City) float64 {
	order.Canonical(cities)

	return TourLength(cities)
}
