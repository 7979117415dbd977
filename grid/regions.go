package grid

// Regions partitions the included cells of g into connected regions.
// Two neighboring cells (under t) belong to the same region when
// join(from, to) reports true; include filters which cells take part at all
// (nil includes every cell).
// Regions are returned in order of their first cell in row-major order, and
// each region lists its points in BFS discovery order.
//
// join is evaluated in both directions as cells are discovered, so a
// non-symmetric predicate yields regions that depend on scan order.
//
// Time:   O(W·H·d), where d = len(t).
// Memory: O(W·H) for visited flags and output.
func Regions[T any](g *Grid[T], t Topology, join func(from, to T) bool, include func(T) bool) [][]Point {
	b := g.Bounds()
	seen := make([]bool, b.Len())
	var regions [][]Point

	for p0 := range b.AllPoints() {
		i0 := b.Index(p0)
		if seen[i0] {
			continue
		}
		if include != nil && !include(g.Get(p0)) {
			continue
		}
		// BFS to collect the region
		queue := []Point{p0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			uv := g.Get(u)
			for v := range b.Neighbors(u, t) {
				vi := b.Index(v)
				if seen[vi] {
					continue
				}
				vv := g.Get(v)
				if include != nil && !include(vv) {
					continue
				}
				if !join(uv, vv) {
					continue
				}
				seen[vi] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}
