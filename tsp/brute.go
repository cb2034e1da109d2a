package tsp

import (
	"slices"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/order"
)

// BruteForce finds an optimal tour by exhaustive search and replaces cities
// with it.
//
// The cities are sorted canonically and the first one is held fixed: rotating
// a closed tour does not change its length, so only the (n-1)! arrangements of
// the rest need scoring. Arrangements are visited in lexicographic order by
// nextPermutation until it wraps; equal cities produce each distinct
// arrangement once. The first strictly shortest arrangement wins.
//
// Tours of 0 or 1 cities return 0 unchanged. Callers bound n themselves; see
// MaxBruteForceCities.
//
// Complexity: O(n!·n) time, O(n) space.
func BruteForce(cities []geom.City) float64 {
	if len(cities) < 2 {
		return 0
	}

	order.Canonical(cities)

	var (
		best    = slices.Clone(cities)
		minDist = TourLength(cities)
		d       float64
	)
	for nextPermutation(cities[1:]) {
		d = TourLength(cities)
		if d < minDist {
			minDist = d
			copy(best, cities)
		}
	}
	copy(cities, best)

	return minDist
}

// nextPermutation rearranges s into the lexicographically next permutation
// under the canonical city order and reports true. When s is already the last
// permutation it is reset to the first (ascending) one and false is returned.
//
// Complexity: O(len(s)) time, O(1) space.
func nextPermutation(s []geom.City) bool {
	var n = len(s)
	if n < 2 {
		return false
	}

	// Longest non-increasing suffix starts after i.
	var i = n - 2
	for i >= 0 && !s[i].Less(s[i+1]) {
		i--
	}
	if i < 0 {
		slices.Reverse(s)
		return false
	}

	// Rightmost element greater than the pivot.
	var j = n - 1
	for !s[i].Less(s[j]) {
		j--
	}
	s[i], s[j] = s[j], s[i]
	slices.Reverse(s[i+1:])

	return true
}
