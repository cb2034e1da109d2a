// Package order - ordering policies over city sequences.
//
// Every policy reorders a []geom.City in place and never computes a score.
// Each one is a strict weak ordering with an explicit tie-break so results are
// reproducible; sorting is stable, so re-sorting an already sorted slice is a
// no-op even where a tie-break is not total (ClosestToPoint).
//
// Floating-point policy:
//   - Distance keys are compared with exact ==, never with an epsilon. On integer
//     coordinate sets equal squared distances produce bit-identical square roots,
//     which is what makes the tie-breaks deterministic. Callers feeding anything
//     else should treat distance ties as brittle.
//
// Complexity: O(n log n) per sort; SetFirstClosestToOrigin is a single O(n) pass.
package order
