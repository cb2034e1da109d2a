package tsp

import "github.com/katalvlaran/citytour/geom"

// symmetry maps a snake cycle built on a base box onto the real box.
// With transpose set the base box is h×w and its axes are swapped first.
type symmetry struct {
	transpose    bool
	flipX, flipY bool
}

// symmetries lists the eight box symmetries in search order.
var symmetries = [...]symmetry{
	{},
	{flipX: true},
	{flipY: true},
	{flipX: true, flipY: true},
	{transpose: true},
	{transpose: true, flipX: true},
	{transpose: true, flipY: true},
	{transpose: true, flipX: true, flipY: true},
}

// Grid solves a complete rectangular lattice of cities in closed form.
//
// The tour starts at entrance, ends at exit and visits every cell once by a
// boustrophedon walk: along the bottom row to the far wall, then back and
// forth across the remaining rows or columns until it reaches the cell beside
// exit. Entrance and exit must be adjacent, so the closing edge is 1 and the
// closed length of a valid instance equals the number of cities.
//
// On success cities is overwritten with the tour (entrance first, exit last).
// On any failed precondition cities is left untouched and NoSolution is
// returned; ValidateGrid names the failure.
//
// Complexity: O(n) time, O(n) space.
func Grid(cities []geom.City, entrance, exit geom.City) float64 {
	lat, err := validateLattice(cities, entrance, exit)
	if err != nil {
		return NoSolution
	}
	path, err := snakePath(lat)
	if err != nil {
		return NoSolution
	}

	var i int
	for i = range path {
		cities[i] = geom.NewCity(
			uint8(lat.minX+int32(path[i].x)),
			uint8(lat.minY+int32(path[i].y)),
		)
	}

	return TourLength(cities)
}

// snakePath returns a Hamiltonian path over the lattice from lat.in to lat.out.
// It tries the snake cycle under each symmetry and cuts the first one that
// uses the in–out edge.
//
// Complexity: O(n) per symmetry, at most 8 symmetries.
func snakePath(lat lattice) ([]cell, error) {
	var n = lat.w * lat.h
	if n == 2 {
		return []cell{lat.in, lat.out}, nil
	}
	// A single row or column longer than 2 has no cycle through every cell.
	if lat.w < 2 || lat.h < 2 {
		return nil, ErrNoHamiltonianPath
	}

	var (
		sym   symmetry
		cycle []cell
		path  []cell
	)
	for _, sym = range symmetries {
		cycle = orient(sym, lat.w, lat.h)
		if path = cutCycle(cycle, lat.in, lat.out); path != nil {
			return path, nil
		}
	}

	return nil, ErrNoHamiltonianPath
}

// orient builds the snake cycle on the base box for sym and maps it onto the
// w×h box.
func orient(sym symmetry, w, h int) []cell {
	var bw, bh = w, h
	if sym.transpose {
		bw, bh = h, w
	}
	cycle := snakeCycle(bw, bh)

	var (
		i int
		c cell
	)
	for i, c = range cycle {
		if sym.transpose {
			c.x, c.y = c.y, c.x
		}
		if sym.flipX {
			c.x = w - 1 - c.x
		}
		if sym.flipY {
			c.y = h - 1 - c.y
		}
		cycle[i] = c
	}

	return cycle
}

// snakeCycle returns a Hamiltonian cycle of the w×h box starting at (0,0).
// Both sides must be at least 2 and w*h even. The walk runs along row 0 to
// the right wall, then:
//   - w even: snakes the columns from right to left over rows 1..h-1, ending
//     at (0,1);
//   - w odd (so h even): snakes rows 1..h-1 over columns 1..w-1, ending at
//     (1,h-1), then descends column 0 to (0,1).
//
// Every left-column edge and every bottom-row edge lies on the cycle.
//
// Complexity: O(w·h).
func snakeCycle(w, h int) []cell {
	cycle := make([]cell, 0, w*h)

	var x, y int
	for x = 0; x < w; x++ {
		cycle = append(cycle, cell{x, 0})
	}

	if w%2 == 0 {
		for x = w - 1; x >= 0; x-- {
			if (w-1-x)%2 == 0 {
				for y = 1; y < h; y++ {
					cycle = append(cycle, cell{x, y})
				}
			} else {
				for y = h - 1; y >= 1; y-- {
					cycle = append(cycle, cell{x, y})
				}
			}
		}

		return cycle
	}

	for y = 1; y < h; y++ {
		if y%2 == 1 {
			for x = w - 1; x >= 1; x-- {
				cycle = append(cycle, cell{x, y})
			}
		} else {
			for x = 1; x < w; x++ {
				cycle = append(cycle, cell{x, y})
			}
		}
	}
	for y = h - 1; y >= 1; y-- {
		cycle = append(cycle, cell{0, y})
	}

	return cycle
}

// cutCycle removes the in–out edge from cycle and returns the remaining path
// oriented from in to out, or nil when in and out are not neighbours on it.
//
// Complexity: O(n).
func cutCycle(cycle []cell, in, out cell) []cell {
	var (
		n = len(cycle)
		p = -1
		i int
	)
	for i = range cycle {
		if cycle[i] == in {
			p = i
			break
		}
	}
	if p < 0 {
		return nil
	}

	var step int
	switch out {
	case cycle[(p+n-1)%n]:
		step = 1 // out precedes in, so walk forward
	case cycle[(p+1)%n]:
		step = n - 1 // out follows in, so walk backward
	default:
		return nil
	}

	path := make([]cell, n)
	for i = 0; i < n; i++ {
		path[i] = cycle[(p+i*step)%n]
	}

	return path
}
