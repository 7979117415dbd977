// Package basin discovers basins in a height map: connected regions that
// drain toward a single local minimum.
//
// What
//
//   - LowPoints: seeds, i.e. points with no in-bounds neighbor at or below
//     their own height.
//   - RiskLevel: sum of (1 + height) over all seeds.
//   - Basins: from each non-barrier seed, every point reachable by repeatedly
//     stepping to a strictly higher neighbor, never entering a barrier cell.
//   - Sizes / TopProduct: rank basins by size.
//
// Termination
//
//	The ascending-frontier relation is acyclic (height strictly increases
//	along every step) and the grid is finite, so expansion always halts.
//	Expansion is iterative with an explicit stack; there is no recursion.
//
// Options
//
//   - DefaultOptions(): Barrier=9, orthogonal topology.
//   - WithBarrier(h):   height h blocks expansion.
//   - WithoutBarrier(): no blocking height.
//   - WithTopology(t):  neighbor offsets; empty → ErrOptionViolation.
//
// Complexity
//
//   - LowPoints: O(W×H×d).
//   - Basins:    O(W×H×d) per basin, Memory O(W×H).
//
// Determinism
//
//	Results depend only on the grid and options. Running twice on equal grids
//	yields equal basins; the grid itself is only read.
package basin
