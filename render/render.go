// Package render prints city sets as plain text: a one-per-line list and an
// occupancy raster of the bounding box.
//
// Output goes to any io.Writer; the first write error is returned.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/citytour/geom"
)

const (
	cellOccupied = 'X'
	cellEmpty    = '-'
)

// List writes one "City (x, y)" line per city in sequence order. With withDist
// set, a "dist = %f" line precedes every city after the first, giving the
// length of the edge that reaches it.
//
// Complexity: O(n).
func List(w io.Writer, cities []geom.City, withDist bool) error {
	bw := bufio.NewWriter(w)
	for i, c := range cities {
		if withDist && i > 0 {
			fmt.Fprintf(bw, "dist = %f\n", cities[i-1].Dist(c))
		}
		fmt.Fprintln(bw, c)
	}

	return bw.Flush()
}

// Grid writes the bounding box of cities row by row, highest y first, with
// 'X' for occupied cells and '-' for empty ones. An empty set writes nothing.
//
// Complexity: O(n + area of the bounding box).
func Grid(w io.Writer, cities []geom.City) error {
	if len(cities) == 0 {
		return nil
	}

	var (
		minX, maxX = cities[0].X(), cities[0].X()
		minY, maxY = cities[0].Y(), cities[0].Y()
	)
	for _, c := range cities[1:] {
		minX, maxX = min(minX, c.X()), max(maxX, c.X())
		minY, maxY = min(minY, c.Y()), max(maxY, c.Y())
	}

	var (
		width    = int(maxX-minX) + 1
		height   = int(maxY-minY) + 1
		occupied = make([]bool, width*height)
	)
	for _, c := range cities {
		occupied[int(c.Y()-minY)*width+int(c.X()-minX)] = true
	}

	bw := bufio.NewWriter(w)
	row := make([]byte, width+1)
	row[width] = '\n'
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			row[x] = cellEmpty
			if occupied[y*width+x] {
				row[x] = cellOccupied
			}
		}
		bw.Write(row)
	}

	return bw.Flush()
}
