// SPDX-License-Identifier: MIT
// Package: citytour/builder
//
// impl_random.go - uniformly scattered cities.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewCities); n == 0 yields an empty, non-nil slice.
//   • Coordinates are drawn independently from 1..maxCoord (x first, then y).
//   • Duplicate coordinates are allowed; they are distinct tour seats.
//
// Determinism:
//   • Same seed and options ⇒ identical cities.
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/citytour/geom"

const methodRandom = "Random"

// Random returns n cities with coordinates in 1..maxCoord.
func Random(n int, opts ...BuilderOption) ([]geom.City, error) {
	if n < 0 {
		return nil, builderErrorf(methodRandom, "n=%d", ErrTooFewCities, n)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.maxCoord == 0 {
		return nil, builderErrorf(methodRandom, "maxCoord=0", ErrBadMaxCoord)
	}

	var (
		cities = make([]geom.City, n)
		bound  = int(cfg.maxCoord)
		x, y   int
	)
	for i := range cities {
		x = cfg.rng.Intn(bound) + 1
		y = cfg.rng.Intn(bound) + 1
		cities[i] = geom.NewCity(uint8(x), uint8(y))
	}

	return cities, nil
}
