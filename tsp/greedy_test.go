package tsp_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/tsp"
	"github.com/stretchr/testify/require"
)

func TestGreedy_Collinear(t *testing.T) {
	cities := []geom.City{c(1, 1), c(2, 1), c(3, 1)}
	require.Equal(t, 4.0, tsp.Greedy(cities))
	// starts at the middle city; the distance tie with equal y keeps the lower index
	require.Equal(t, []geom.City{c(2, 1), c(1, 1), c(3, 1)}, cities)

	// independent of the input order
	shuffled := []geom.City{c(3, 1), c(1, 1), c(2, 1)}
	require.Equal(t, 4.0, tsp.Greedy(shuffled))
	require.Equal(t, cities, shuffled)
}

func TestGreedy_TieBreakSmallerY(t *testing.T) {
	cities := []geom.City{c(2, 2), c(1, 2), c(2, 1), c(1, 1)}
	require.Equal(t, 4.0, tsp.Greedy(cities))
	// from (2,1) both (1,1) and (2,2) are 1 away; (1,1) has the smaller y
	require.Equal(t, []geom.City{c(2, 1), c(1, 1), c(1, 2), c(2, 2)}, cities)
}

func TestGreedy_Degenerate(t *testing.T) {
	require.Equal(t, 0.0, tsp.Greedy(nil))

	one := []geom.City{c(4, 4)}
	require.Equal(t, 0.0, tsp.Greedy(one))
	require.Equal(t, []geom.City{c(4, 4)}, one)

	two := []geom.City{c(4, 5), c(1, 1)}
	require.Equal(t, 10.0, tsp.Greedy(two))
	require.Len(t, two, 2)
}

func TestGreedy_DeterministicAndConsistent(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 10; seed++ {
		input := randomCities(t, 40, 30, seed)

		a := slices.Clone(input)
		b := slices.Clone(input)
		la := tsp.Greedy(a)
		lb := tsp.Greedy(b)

		require.Equal(t, la, lb, "seed=%d", seed)
		require.Equal(t, a, b, "seed=%d", seed)
		require.ElementsMatch(t, input, a, "seed=%d", seed)
		require.Equal(t, tsp.TourLength(a), la, "seed=%d", seed)
	}
}

func TestGreedy_GridLength(t *testing.T) {
	cities := gridOf(t, 4, 3, 1, 1)
	require.InDelta(t, 15.8416, tsp.Greedy(cities), 1e-4)
	require.Equal(t, c(2, 2), cities[0])
}
