// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package.
package tsp_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/citytour/builder"
	"github.com/katalvlaran/citytour/geom"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny absorbs summation-order noise when comparing tour lengths.
	epsTiny = 1e-9

	// bruteMaxN is the largest instance the optimality-oracle tests enumerate.
	bruteMaxN = 9
)

// c is a terse constructor for table literals.
func c(x, y uint8) geom.City { return geom.NewCity(x, y) }

// gridOf returns the w×h lattice anchored at (x0, y0) in canonical order.
func gridOf(t *testing.T, w, h, x0, y0 uint8) []geom.City {
	t.Helper()
	cities, err := builder.Grid(w, h)
	require.NoError(t, err)
	for i := range cities {
		cities[i] = geom.NewCity(uint8(cities[i].X())+x0-1, uint8(cities[i].Y())+y0-1)
	}

	return cities
}

// randomCities returns a deterministic instance of n cities in 1..maxCoord.
func randomCities(t *testing.T, n int, maxCoord uint8, seed int64) []geom.City {
	t.Helper()
	cities, err := builder.Random(n, builder.WithSeed(seed), builder.WithMaxCoord(maxCoord))
	require.NoError(t, err)

	return cities
}

// rotate returns a copy of cities shifted left by k positions.
func rotate(cities []geom.City, k int) []geom.City {
	n := len(cities)
	out := make([]geom.City, n)
	for i := range cities {
		out[i] = cities[(i+k)%n]
	}

	return out
}

// requireUnitPath asserts that path visits every cell of want exactly once
// and that each step, including the closing one, has length 1.
func requireUnitPath(t *testing.T, want, path []geom.City) {
	t.Helper()
	require.ElementsMatch(t, want, path)

	sorted := slices.Clone(path)
	slices.SortFunc(sorted, geom.Compare)
	require.Len(t, slices.Compact(sorted), len(want), "duplicate cell in path")

	n := len(path)
	for i := range path {
		require.Equal(t, 1.0, path[i].Dist(path[(i+1)%n]), "step %d: %v -> %v", i, path[i], path[(i+1)%n])
	}
}
