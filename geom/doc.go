// Package geom provides the geometric model shared by every citytour solver:
// integer points, cities with 8-bit coordinates, and the Euclidean metric.
//
//   - Point - a signed integer coordinate pair used as a distance target.
//   - City  - a point with non-negative 8-bit coordinates; stored as int32 so
//     squared differences never overflow.
//   - Order - cities are totally ordered by y, then by x (the canonical order).
//
// All values are immutable and comparable with ==; two cities with equal
// coordinates are interchangeable.
//
// Complexity: every operation is O(1).
package geom
