// Package fold implements the axis-fold transform of an occupancy grid and
// parses the transparent-sheet manual format that drives it.
//
// What:
//
//   - Fold(g, in): new grid, in.Line cells along the folded axis, each cell
//     the OR of itself and its mirror across the line.
//   - Apply(g, folds): sequential folds.
//   - ParseManual / ParseLines: "x,y" dots, blank line, fold instructions.
//   - Render: two-glyph text rendering for reading the folded code by eye.
//
// Ownership:
//
//	Fold always allocates. The input grid is never mutated, so callers may
//	keep folding the same sheet along different lines.
//
// Invariants:
//
//   - Occupied(Fold(g, in)) <= Occupied(g).
//   - Mirrors outside g contribute nothing; the fold line is discarded.
//
// Errors:
//
//   - ErrFoldOutOfRange:       negative fold line.
//   - ErrUnknownAxis:          axis other than X or Y.
//   - ErrMalformedPoint:       dot line is not "x,y" with non-negative ints.
//   - ErrMalformedInstruction: instruction line is not "fold along x|y=N".
package fold
