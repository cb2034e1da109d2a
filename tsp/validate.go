// Package tsp - grid precondition checks.
//
// Grid preconditions are verified in stages, cheapest first, and each failure
// maps to exactly one sentinel from types.go:
//  1. Even city count.
//  2. Entrance and exit each match exactly one city, and not the same one.
//  3. Both lie on the left column, right column or bottom row of the
//     bounding box. The top row alone does not qualify.
//  4. Entrance and exit are exactly 1 apart.
//  5. The cities fill their bounding box, one per cell.
//
// No logging, no panics; side-effect free.
package tsp

import "github.com/katalvlaran/citytour/geom"

// cell is a lattice position relative to the bounding box's lower-left corner.
type cell struct {
	x, y int
}

// lattice describes a validated grid instance.
type lattice struct {
	minX, minY int32 // lower-left corner in city coordinates
	w, h       int   // box width and height in cells
	in, out    cell  // entrance and exit, box-relative
}

// ValidateGrid reports why Grid would return NoSolution for the instance, or
// nil when it is solvable. It does not modify cities.
//
// Complexity: O(n) time, O(n) space.
func ValidateGrid(cities []geom.City, entrance, exit geom.City) error {
	lat, err := validateLattice(cities, entrance, exit)
	if err != nil {
		return err
	}
	_, err = snakePath(lat)

	return err
}

// validateLattice runs stages 1–5 and returns the box geometry.
func validateLattice(cities []geom.City, entrance, exit geom.City) (lattice, error) {
	var n = len(cities)

	// Stage 1: an odd total cannot split into an in/out pair plus a Hamiltonian interior.
	if n%2 != 0 {
		return lattice{}, ErrOddCityCount
	}

	// Stage 2: unique, distinct endpoints.
	var (
		ei, xi int
		err    error
	)
	if ei, err = locate(cities, entrance); err != nil {
		return lattice{}, err
	}
	if xi, err = locate(cities, exit); err != nil {
		return lattice{}, err
	}
	if ei == xi {
		return lattice{}, ErrSameEndpoint
	}

	// Stage 3: boundary membership.
	var (
		minX, maxX = cities[0].X(), cities[0].X()
		minY, maxY = cities[0].Y(), cities[0].Y()
		c          geom.City
	)
	for _, c = range cities[1:] {
		minX, maxX = min(minX, c.X()), max(maxX, c.X())
		minY, maxY = min(minY, c.Y()), max(maxY, c.Y())
	}
	for _, c = range []geom.City{entrance, exit} {
		if c.X() != minX && c.X() != maxX && c.Y() != minY {
			return lattice{}, ErrNotOnBoundary
		}
	}

	// Stage 4: axis-adjacent endpoints.
	if entrance.Dist(exit) != 1 {
		return lattice{}, ErrNotAdjacent
	}

	// Stage 5: one city per cell of the box.
	var (
		w = int(maxX-minX) + 1
		h = int(maxY-minY) + 1
	)
	if w*h != n {
		return lattice{}, ErrIncompleteGrid
	}
	seen := make([]bool, n)

	var idx int
	for _, c = range cities {
		idx = int(c.Y()-minY)*w + int(c.X()-minX)
		if seen[idx] {
			return lattice{}, ErrIncompleteGrid
		}
		seen[idx] = true
	}

	return lattice{
		minX: minX,
		minY: minY,
		w:    w,
		h:    h,
		in:   cell{x: int(entrance.X() - minX), y: int(entrance.Y() - minY)},
		out:  cell{x: int(exit.X() - minX), y: int(exit.Y() - minY)},
	}, nil
}

// locate returns the index of the only city equal to target.
//
// Complexity: O(n).
func locate(cities []geom.City, target geom.City) (int, error) {
	var (
		found = -1
		i     int
	)
	for i = range cities {
		if !cities[i].Equal(target) {
			continue
		}
		if found >= 0 {
			return -1, ErrEndpointAmbiguous
		}
		found = i
	}
	if found < 0 {
		return -1, ErrEndpointNotFound
	}

	return found, nil
}
