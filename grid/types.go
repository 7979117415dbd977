// Package grid defines the coordinate, topology and storage types shared by
// every analysis in github.com/katalvlaran/lvlgrid.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrInconsistentRowWidth indicates decoded rows of differing lengths.
	ErrInconsistentRowWidth = errors.New("grid: all decoded rows must have the same width")
	// ErrNegativeBounds indicates a requested width or height below zero.
	ErrNegativeBounds = errors.New("grid: width and height must be non-negative")
)

// Point is a 0-based cell coordinate. Points compare equal by component.
type Point struct {
	X, Y int
}

// Offset is a signed relative step. It is not bounds-checked by itself;
// combine it with a Point through Bounds.Offset.
type Offset struct {
	DX, DY int
}

// Add translates p by d without any bounds check.
func (p Point) Add(d Offset) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Bounds is the size of a rectangular grid.
type Bounds struct {
	Width, Height int
}

// Topology is an ordered, fixed set of neighbor offsets.
// The order is stable for the lifetime of the program.
type Topology []Offset

// Grid is a fixed-size rectangular store of cell values kept in row-major
// order (index = x + y*Width). len(cells) == Width*Height at all times.
//
// Set mutates the grid in place. Build, New and Clone always allocate a
// fresh backing slice, so no two grids ever share cells.
type Grid[T any] struct {
	Width, Height int
	cells         []T
}
