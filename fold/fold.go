// Package fold overlays the two halves of an occupancy grid along an axis.
package fold

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Fold returns a new grid of size in.Line along the folded axis (the other
// axis is unchanged). Each surviving cell is the OR of the cell at the same
// position and its mirror across the fold line; mirrors that fall outside g
// contribute nothing. The fold line itself is discarded.
//
// Fold never mutates g and never shares cells with it.
// Complexity: O(W·H) time and memory.
func Fold(g *grid.Grid[bool], in Instruction) (*grid.Grid[bool], error) {
	if in.Line < 0 {
		return nil, fmt.Errorf("%w: %s", ErrFoldOutOfRange, in)
	}
	var (
		size   grid.Bounds
		mirror func(grid.Point) grid.Point
	)
	switch in.Axis {
	case X:
		size = grid.Bounds{Width: in.Line, Height: g.Height}
		mirror = func(p grid.Point) grid.Point { return grid.Point{X: 2*in.Line - p.X, Y: p.Y} }
	case Y:
		size = grid.Bounds{Width: g.Width, Height: in.Line}
		mirror = func(p grid.Point) grid.Point { return grid.Point{X: p.X, Y: 2*in.Line - p.Y} }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAxis, in.Axis)
	}

	out, err := grid.New(size, false)
	if err != nil {
		return nil, err
	}
	for p := range size.AllPoints() {
		v, _ := g.At(p)
		if !v {
			v, _ = g.At(mirror(p))
		}
		out.Set(p, v)
	}
	return out, nil
}

// Apply folds g by every instruction in order and returns the final grid.
// With no instructions it returns a clone of g.
func Apply(g *grid.Grid[bool], folds []Instruction) (*grid.Grid[bool], error) {
	cur := g.Clone()
	for i, in := range folds {
		next, err := Fold(cur, in)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", i+1, err)
		}
		cur = next
	}
	return cur, nil
}

// Occupied counts the set cells of g.
func Occupied(g *grid.Grid[bool]) int {
	return g.Count(func(v bool) bool { return v })
}

// Render draws g with on for set cells and off for empty ones.
func Render(g *grid.Grid[bool], on, off rune) string {
	return grid.Render(g, func(v bool) rune {
		if v {
			return on
		}
		return off
	})
}
