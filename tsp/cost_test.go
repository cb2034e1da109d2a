package tsp_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/tsp"
	"github.com/stretchr/testify/require"
)

func TestTourLength(t *testing.T) {
	tests := []struct {
		name   string
		cities []geom.City
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []geom.City{c(9, 9)}, 0},
		{"pair there and back", []geom.City{c(0, 0), c(3, 4)}, 10},
		{"unit square", []geom.City{c(0, 0), c(1, 0), c(1, 1), c(0, 1)}, 4},
		{"duplicates", []geom.City{c(2, 2), c(2, 2)}, 0},
		{"collinear", []geom.City{c(1, 1), c(2, 1), c(3, 1)}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tsp.TourLength(tc.cities))
		})
	}
}

func TestTourLength_RotationInvariant(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 5; seed++ {
		cities := randomCities(t, 15, 50, seed)
		base := tsp.TourLength(cities)
		require.GreaterOrEqual(t, base, 0.0)
		for k := 1; k < len(cities); k++ {
			require.InDelta(t, base, tsp.TourLength(rotate(cities, k)), epsTiny, "seed=%d k=%d", seed, k)
		}
	}
}

func TestNaive_KeepsOrder(t *testing.T) {
	cities := []geom.City{c(0, 0), c(1, 1), c(1, 0), c(0, 1)}
	before := slices.Clone(cities)
	require.Equal(t, tsp.TourLength(before), tsp.Naive(cities))
	require.Equal(t, before, cities)
}

func TestSorted(t *testing.T) {
	cities := []geom.City{c(3, 1), c(1, 3), c(2, 1), c(1, 1)}
	got := tsp.Sorted(cities)
	want := []geom.City{c(1, 1), c(2, 1), c(3, 1), c(1, 3)}
	require.Equal(t, want, cities)
	require.Equal(t, tsp.TourLength(want), got)

	// deterministic and idempotent
	again := slices.Clone(cities)
	require.Equal(t, got, tsp.Sorted(again))
	require.Equal(t, cities, again)

	require.Equal(t, 0.0, tsp.Sorted(nil))
}
