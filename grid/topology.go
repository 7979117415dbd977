package grid

import "iter"

var (
	// Orthogonal holds the four edge-sharing neighbors: up, left, right, down.
	Orthogonal = Topology{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

	// Full holds the orthogonal four followed by the four diagonals.
	Full = Topology{
		{0, -1}, {-1, 0}, {1, 0}, {0, 1},
		{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
	}
)

// Neighbors yields the in-bounds neighbors of p under t, in topology order.
// Offsets that leave the bounds are skipped silently.
func (b Bounds) Neighbors(p Point, t Topology) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range t {
			q, ok := b.Offset(p, d)
			if !ok {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// Neighbors yields the in-bounds neighbors of p under t.
func (g *Grid[T]) Neighbors(p Point, t Topology) iter.Seq[Point] {
	return g.Bounds().Neighbors(p, t)
}
