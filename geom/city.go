package geom

import "fmt"

// City is a tour stop. Coordinates are 8-bit at construction and kept as
// int32 internally; a City carries no identity beyond its coordinates.
type City struct {
	coords Point
}

// NewCity returns the city at (x, y).
func NewCity(x, y uint8) City {
	return City{coords: Point{x: int32(x), y: int32(y)}}
}

// X returns the x coordinate.
func (c City) X() int32 { return c.coords.x }

// Y returns the y coordinate.
func (c City) Y() int32 { return c.coords.y }

// Point returns the city's coordinates as a Point.
func (c City) Point() Point { return c.coords }

// Equal reports whether c and o share both coordinates.
func (c City) Equal(o City) bool {
	return c.coords == o.coords
}

// Less reports whether c precedes o in the canonical order:
// smaller y first, then smaller x.
func (c City) Less(o City) bool {
	return c.coords.y < o.coords.y || (c.coords.y == o.coords.y && c.coords.x < o.coords.x)
}

// Compare is the three-way form of Less, suitable for slices.SortFunc.
func Compare(a, b City) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// DistTo returns the Euclidean distance from c to p.
func (c City) DistTo(p Point) float64 {
	return euclid(c.coords.x, c.coords.y, p.x, p.y)
}

// Dist returns the Euclidean distance between two cities.
func (c City) Dist(o City) float64 {
	return c.DistTo(o.coords)
}

// DistToOrigin returns the distance from c to (0, 0).
func (c City) DistToOrigin() float64 {
	return c.DistTo(Origin)
}

// String renders the city as "City (x, y)".
func (c City) String() string {
	return fmt.Sprintf("City (%d, %d)", c.coords.x, c.coords.y)
}
