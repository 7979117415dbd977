// Package lvlgrid is a toolkit for bounded 2D grids and the puzzles built
// on top of them.
//
// 🚀 What is inside?
//
//	• grid/     : generic Grid[T], Bounds, Point, topologies, region flood fill
//	• basin/    : low points, risk level and basin discovery on height maps
//	• cascade/  : threshold-triggered flash cascades with step tracking
//	• fold/     : transparent-sheet folding and manual parsing
//	• overlay/  : line segments rasterized onto a counting grid
//	• input/    : line, block and digit-grid readers
//	• config/   : YAML settings shared by the solvers
//	• solver/   : registry of daily puzzles wired to the packages above
//	• cmd/lvlgrid: command line front end (run, list, sample)
//
// ✨ Conventions
//
//   - Coordinates are (X, Y) with X growing right and Y growing down.
//   - Cells are stored row-major; a Grid never changes its Bounds.
//   - At and Offset report out-of-range access through an ok flag; Get and Set expect valid points.
//   - Errors are package sentinels wrapped with context; match them with errors.Is.
//
// Quick example:
//
//	g, _ := grid.Build([]string{"219", "398"}, input.Digit)
//	risk, _ := basin.RiskLevel(g)
//	fmt.Println(risk) // 11
//
// See the package docs for the full API of each subpackage.
package lvlgrid
