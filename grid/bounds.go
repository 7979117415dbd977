package grid

import "iter"

// Contains reports whether p lies within the bounds.
// Complexity: O(1).
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Len returns the number of cells, Width*Height.
func (b Bounds) Len() int {
	return b.Width * b.Height
}

// Offset translates p by d and returns the result only if it stays inside b.
// A false result is the ordinary "neighbor falls outside the grid" case,
// not an error.
// Complexity: O(1).
func (b Bounds) Offset(p Point, d Offset) (Point, bool) {
	q := p.Add(d)
	if !b.Contains(q) {
		return Point{}, false
	}
	return q, true
}

// AllPoints yields every point of b exactly once in row-major order.
// The sequence is finite and restartable: ranging over it again produces
// the same points in the same order.
func (b Bounds) AllPoints() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Index maps p to its row-major index: p.X + p.Y*Width.
// Complexity: O(1).
func (b Bounds) Index(p Point) int {
	return p.X + p.Y*b.Width
}

// Point converts a row-major index back to a Point.
// Complexity: O(1).
func (b Bounds) Point(idx int) Point {
	return Point{X: idx % b.Width, Y: idx / b.Width}
}
