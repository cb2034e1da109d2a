package geom

import "math"

// Point is an immutable pair of signed integer coordinates.
type Point struct {
	x int32
	y int32
}

// Origin is the point (0, 0).
var Origin = Point{}

// NewPoint returns the point (x, y).
func NewPoint(x, y int32) Point {
	return Point{x: x, y: y}
}

// X returns the x coordinate.
func (p Point) X() int32 { return p.x }

// Y returns the y coordinate.
func (p Point) Y() int32 { return p.y }

// euclid returns the Euclidean distance between (ax, ay) and (bx, by).
// Differences are taken in int64 and squared in float64, which is exact for
// every City pair and cannot overflow for any Point pair.
//
// Complexity: O(1).
func euclid(ax, ay, bx, by int32) float64 {
	var (
		dx = float64(int64(bx) - int64(ax))
		dy = float64(int64(by) - int64(ay))
	)

	return math.Sqrt(dx*dx + dy*dy)
}

// DistTo returns the Euclidean distance from p to q.
func (p Point) DistTo(q Point) float64 {
	return euclid(p.x, p.y, q.x, q.y)
}
