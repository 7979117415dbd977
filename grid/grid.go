// Package grid provides a generic, bounded 2D grid:
//
//   - Point/Offset arithmetic that never leaves the grid (Bounds.Offset)
//   - Orthogonal and Full neighbor topologies
//   - Row-major storage built once from decoded text rows
//   - Flood-fill region discovery under an arbitrary join predicate
//
// Out-of-bounds navigation is never an error: lookups simply report absence.
package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Build decodes rows into a Grid. Each rune of a row is passed to decode;
// runes for which decode reports false are dropped, not replaced.
// The first row fixes the width; any later row whose decoded width differs
// fails the whole construction with ErrInconsistentRowWidth.
// Height is len(rows).
// Complexity: O(total runes) time and memory.
func Build[T any](rows []string, decode func(rune) (T, bool)) (*Grid[T], error) {
	var (
		width = -1
		cells []T
	)
	for y, row := range rows {
		n := 0
		for _, r := range row {
			v, ok := decode(r)
			if !ok {
				continue
			}
			cells = append(cells, v)
			n++
		}
		if width < 0 {
			width = n
			continue
		}
		if n != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d (%q)",
				ErrInconsistentRowWidth, y, n, width, row)
		}
	}
	if width < 0 {
		width = 0
	}

	return &Grid[T]{Width: width, Height: len(rows), cells: cells}, nil
}

// New allocates a Width×Height grid with every cell set to fill.
// Complexity: O(W×H).
func New[T any](b Bounds, fill T) (*Grid[T], error) {
	if b.Width < 0 || b.Height < 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrNegativeBounds, b.Width, b.Height)
	}
	cells := make([]T, b.Len())
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{Width: b.Width, Height: b.Height, cells: cells}, nil
}

// Bounds returns the grid size.
func (g *Grid[T]) Bounds() Bounds {
	return Bounds{Width: g.Width, Height: g.Height}
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Get returns the value at p. The caller guarantees p is in bounds
// (typically via Bounds.Offset); out-of-bounds access panics.
func (g *Grid[T]) Get(p Point) T {
	return g.cells[p.X+p.Y*g.Width]
}

// Set overwrites the value at p in place. Same precondition as Get.
func (g *Grid[T]) Set(p Point, v T) {
	g.cells[p.X+p.Y*g.Width] = v
}

// At is the checked form of Get: ok is false when p lies outside the grid.
func (g *Grid[T]) At(p Point) (v T, ok bool) {
	if !g.Bounds().Contains(p) {
		return v, false
	}
	return g.Get(p), true
}

// Cells yields every (point, value) pair in row-major order.
func (g *Grid[T]) Cells() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			if !yield(Point{X: i % g.Width, Y: i / g.Width}, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of g; the two grids share no cells.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{Width: g.Width, Height: g.Height, cells: cells}
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Map builds a new grid of the same size with f applied to every cell.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		cells[i] = f(v)
	}
	return &Grid[U]{Width: g.Width, Height: g.Height, cells: cells}
}

// Equal reports whether a and b have the same size and cell values.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.Width != b.Width || a.Height != b.Height || len(a.cells) != len(b.cells) {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}

// Render writes the grid as text, one line per row, using glyph to turn each
// cell into a rune. Rows are separated by '\n' with no trailing newline.
func Render[T any](g *Grid[T], glyph func(T) rune) string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(glyph(g.Get(Point{X: x, Y: y})))
		}
	}
	return sb.String()
}
