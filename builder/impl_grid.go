// SPDX-License-Identifier: MIT
// Package: citytour/builder
//
// impl_grid.go - complete lattice of cities.
//
// Contract:
//   • width ≥ 1 and height ≥ 1 (else ErrTooFewCities).
//   • Cities (x, y) for y ∈ 1..height, x ∈ 1..width, y-major: the output is
//     already in canonical order.
//
// Complexity: O(width·height) time and space.

package builder

import "github.com/katalvlaran/citytour/geom"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns every city of the width×height lattice anchored at (1, 1).
func Grid(width, height uint8) ([]geom.City, error) {
	if width < minGridDim || height < minGridDim {
		return nil, builderErrorf(methodGrid, "width=%d, height=%d (each must be ≥ %d)",
			ErrTooFewCities, width, height, minGridDim)
	}

	cities := make([]geom.City, 0, int(width)*int(height))
	for y := 1; y <= int(height); y++ {
		for x := 1; x <= int(width); x++ {
			cities = append(cities, geom.NewCity(uint8(x), uint8(y)))
		}
	}

	return cities, nil
}
