// Package citytour computes and compares Travelling Salesman tour lengths over
// small sets of integer-coordinate cities.
//
// Everything is organized under subpackages:
//
//	geom/    - Point, City and the Euclidean metric
//	order/   - in-place ordering policies (canonical, closest-to-point, …)
//	tsp/     - tour evaluator and solvers: naive, sorted, greedy, brute force, grid
//	builder/ - reproducible city sets: complete grids and seeded random scatters
//	render/  - text output: city lists and occupancy grids
//
// The citytour command (cmd/citytour) wires them together and times each solver.
//
// Quick ASCII example, the 4×3 grid tour entering at (1,1) and leaving at (1,2):
//
//	┌─┐ ┌─┐
//	│ │ │ │
//	│ └─┘ │
//	└─────┘  length 12
//
//	go get github.com/katalvlaran/citytour
package citytour
