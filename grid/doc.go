// Package grid is the bounded 2D grid toolkit underneath every analysis in
// lvlgrid.
//
// What:
//
//   - Point and Offset value types; Bounds.Offset returns a translated point
//     only when it stays inside the grid.
//   - Grid[T]: fixed-size, row-major storage built once from decoded text rows.
//   - Topology: ordered neighbor offsets. Orthogonal (up, left, right, down)
//     and Full (orthogonal plus the four diagonals).
//   - Regions: flood fill that partitions cells by a join predicate.
//
// Why:
//
//   - One generic grid instead of a hand-rolled struct per puzzle.
//   - Bounds checks live in exactly one place (Bounds.Offset), so algorithms
//     never index outside the grid.
//
// Ownership:
//
//   - Set mutates in place.
//   - Build, New, Clone and Map allocate; the result shares nothing with any
//     other grid.
//
// Complexity:
//
//   - Build:      O(total runes), Memory: O(W×H).
//   - AllPoints:  O(W×H), lazily.
//   - Regions:    O(W×H×d), Memory: O(W×H)    (d = len(topology), 4 or 8).
//
// Errors:
//
//   - ErrInconsistentRowWidth: decoded rows differ in length. The wrapped
//     message names the offending row.
//   - ErrNegativeBounds: New was asked for a negative size.
//
// Out-of-bounds navigation is not an error: Offset, At and Neighbors report
// absence and callers move on.
package grid
