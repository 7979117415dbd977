// Package overlay draws line segments onto a count grid and reports where
// they overlap.
//
// What:
//
//   - Segment parsing from "x1,y1 -> x2,y2" lines.
//   - Kind classification: Horizontal, Vertical, Diagonal (45°), Skew.
//   - Draw: one count per covering segment, grid sized to the endpoints.
//   - Overlaps: cells covered by at least n segments.
//
// Diagonals:
//
//	Whether diagonal segments are drawn is an explicit policy, never a
//	silent drop. RejectDiagonals (default) fails with
//	ErrDiagonalUnsupported; SkipDiagonals leaves them out; DrawDiagonals
//	rasterizes them. Skew segments always fail with ErrSkewSegment.
//
// Errors:
//
//   - ErrMalformedSegment, ErrDiagonalUnsupported, ErrSkewSegment,
//     ErrOptionViolation.
package overlay
