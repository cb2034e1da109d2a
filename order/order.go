package order

import (
	"slices"

	"github.com/katalvlaran/citytour/geom"
)

// Policy reorders cities in place.
type Policy func(cities []geom.City)

// Policies maps the CLI name of each parameterless policy to its function.
var Policies = map[string]Policy{
	"canonical": Canonical,
	"origin":    ClosestToOrigin,
	"sum":       SmallestCoordinateSum,
	"product":   SmallestCoordinateProduct,
	"largest":   LargestCoordinate,
	"first":     SetFirstClosestToOrigin,
}

// Canonical sorts by y, then by x.
func Canonical(cities []geom.City) {
	slices.SortStableFunc(cities, geom.Compare)
}

// ClosestToPoint sorts by distance to p; equal distances go to the smaller y.
func ClosestToPoint(p geom.Point, cities []geom.City) {
	slices.SortStableFunc(cities, func(a, b geom.City) int {
		return byDistThenY(a, b, a.DistTo(p), b.DistTo(p))
	})
}

// ClosestToOrigin sorts by distance to (0, 0); equal distances go to the smaller y.
func ClosestToOrigin(cities []geom.City) {
	slices.SortStableFunc(cities, func(a, b geom.City) int {
		return byDistThenY(a, b, a.DistToOrigin(), b.DistToOrigin())
	})
}

// SmallestCoordinateSum sorts by x+y, the arithmetic-mean proxy; equal sums
// go to the smaller y.
func SmallestCoordinateSum(cities []geom.City) {
	slices.SortStableFunc(cities, func(a, b geom.City) int {
		var (
			as = a.X() + a.Y()
			bs = b.X() + b.Y()
		)
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		}

		return cmpY(a, b)
	})
}

// SmallestCoordinateProduct sorts by x*y, the geometric-mean proxy; ties fall
// back to the canonical order.
func SmallestCoordinateProduct(cities []geom.City) {
	slices.SortStableFunc(cities, func(a, b geom.City) int {
		var (
			ap = int64(a.X()) * int64(a.Y())
			bp = int64(b.X()) * int64(b.Y())
		)
		switch {
		case ap < bp:
			return -1
		case ap > bp:
			return 1
		}

		return geom.Compare(a, b)
	})
}

// LargestCoordinate sorts by max(x, y) ascending; ties fall back to the
// canonical order.
func LargestCoordinate(cities []geom.City) {
	slices.SortStableFunc(cities, func(a, b geom.City) int {
		var (
			am = max(a.X(), a.Y())
			bm = max(b.X(), b.Y())
		)
		switch {
		case am < bm:
			return -1
		case am > bm:
			return 1
		}

		return geom.Compare(a, b)
	})
}

// SetFirstClosestToOrigin moves the city nearest to (0, 0) to index 0 by a
// single swap; the rest of the slice keeps its order except for the displaced
// first element. Equal distances go to the smaller y, then to the first seen.
//
// Complexity: O(n).
func SetFirstClosestToOrigin(cities []geom.City) {
	if len(cities) < 2 {
		return
	}

	var (
		best    = 0
		minDist = cities[0].DistToOrigin()
		d       float64
		i       int
	)
	for i = 1; i < len(cities); i++ {
		d = cities[i].DistToOrigin()
		if d < minDist || (d == minDist && cities[i].Y() < cities[best].Y()) {
			minDist = d
			best = i
		}
	}
	cities[0], cities[best] = cities[best], cities[0]
}

// byDistThenY orders by the precomputed distances with exact equality, then by y.
func byDistThenY(a, b geom.City, ad, bd float64) int {
	switch {
	case ad < bd:
		return -1
	case ad > bd:
		return 1
	}

	return cmpY(a, b)
}

func cmpY(a, b geom.City) int {
	switch {
	case a.Y() < b.Y():
		return -1
	case a.Y() > b.Y():
		return 1
	default:
		return 0
	}
}
