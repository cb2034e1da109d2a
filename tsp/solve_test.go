package tsp_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/citytour/geom"
	"github.com/katalvlaran/citytour/tsp"
	"github.com/stretchr/testify/require"
)

func TestSolve_Routes(t *testing.T) {
	input := []geom.City{c(3, 1), c(1, 1), c(2, 1)}

	tests := []struct {
		algo tsp.Algorithm
		fn   tsp.Solver
	}{
		{tsp.AlgoNaive, tsp.Naive},
		{tsp.AlgoSorted, tsp.Sorted},
		{tsp.AlgoGreedy, tsp.Greedy},
		{tsp.AlgoBruteForce, tsp.BruteForce},
	}
	for _, tc := range tests {
		t.Run(tc.algo.String(), func(t *testing.T) {
			viaSolve := slices.Clone(input)
			direct := slices.Clone(input)

			got, err := tsp.Solve(tc.algo, viaSolve)
			require.NoError(t, err)
			require.Equal(t, tc.fn(direct), got)
			require.Equal(t, direct, viaSolve)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	_, err := tsp.Solve(tsp.Algorithm(99), nil)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	big := randomCities(t, tsp.MaxBruteForceCities+1, 20, 1)
	before := slices.Clone(big)
	_, err = tsp.Solve(tsp.AlgoBruteForce, big)
	require.ErrorIs(t, err, tsp.ErrTooManyCities)
	require.Equal(t, before, big)

	// other solvers have no size limit
	_, err = tsp.Solve(tsp.AlgoGreedy, big)
	require.NoError(t, err)
}

func TestParseAlgorithm(t *testing.T) {
	for algo := range tsp.Solvers {
		got, err := tsp.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		require.Equal(t, algo, got)
	}

	_, err := tsp.ParseAlgorithm("annealing")
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
	require.Equal(t, "unknown", tsp.Algorithm(-1).String())
}
