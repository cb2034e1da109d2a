package tsp

import (
	"math"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/order"
)

// Greedy builds a nearest-neighbour tour and replaces cities with it.
//
// Steps:
//  1. Sort canonically and swap the city at index n-1-n/2 to the front; the
//     start sits near the middle of the sorted order rather than at its corner.
//  2. From the current city pick the nearest unvisited one. Equal distances go
//     to the smaller y; a full tie keeps the lower index.
//  3. After the last city, add the closing edge back to the start.
//
// The result depends only on the input coordinates and their order, since
// every comparison has a tie-break. Tours of 0 or 1 cities return 0 unchanged.
//
// Complexity: O(n²) time, O(n) space.
func Greedy(cities []geom.City) float64 {
	var n = len(cities)
	if n < 2 {
		return 0
	}

	order.Canonical(cities)
	var mid = n - 1 - n/2
	cities[0], cities[mid] = cities[mid], cities[0]

	var (
		visited = make([]bool, n)
		path    = make([]geom.City, 0, n)
		last    int     // index of the most recently visited city
		total   float64 // accumulated open-path length
	)
	visited[0] = true
	path = append(path, cities[0])

	var (
		step, j int
		best    int
		minDist float64
		d       float64
	)
	for step = 1; step < n; step++ {
		minDist = math.Inf(1)
		best = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d = cities[last].Dist(cities[j])
			if d < minDist || (d == minDist && cities[j].Y() < cities[best].Y()) {
				minDist = d
				best = j
			}
		}
		visited[best] = true
		last = best
		path = append(path, cities[best])
		total += minDist
	}

	// Return trip.
	total += path[n-1].Dist(path[0])
	copy(cities, path)

	return total
}
