// Package basin finds local minima and the ascending basins around them in a
// grid of integer heights.
package basin

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlgrid/grid"
)

// LowPoints returns every seed of g in row-major order. A seed is a point
// none of whose in-bounds neighbors is lower than or equal to it.
// Barriers are not excluded here; RiskLevel counts them like any other seed.
//
// Time: O(W·H·d), Memory: O(number of seeds).
func LowPoints[T constraints.Integer](g *grid.Grid[T], opts ...Option) ([]grid.Point, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return lowPoints(g, o.Topology), nil
}

// RiskLevel returns the sum of (1 + height) over all low points.
func RiskLevel[T constraints.Integer](g *grid.Grid[T], opts ...Option) (int, error) {
	seeds, err := LowPoints(g, opts...)
	if err != nil {
		return 0, err
	}
	risk := 0
	for _, p := range seeds {
		risk += 1 + int(g.Get(p))
	}
	return risk, nil
}

// Basins grows one basin from every non-barrier low point, following
// ascending-frontier edges (neighbors with strictly greater height) and
// skipping barrier cells. Basins are returned in seed row-major order.
//
// Each basin is expanded with an explicit work list and a per-basin
// membership mark, so a point joins a given basin at most once. The walk
// terminates because every step strictly increases height.
//
// Time: O(W·H·d) per basin, Memory: O(W·H).
func Basins[T constraints.Integer](g *grid.Grid[T], opts ...Option) ([]Basin, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	blocked := func(v T) bool {
		return o.Barriers && int64(v) == o.Barrier
	}

	b := g.Bounds()
	// mark[i] == basin number + 1 once point i joined that basin
	mark := make([]int, b.Len())
	var basins []Basin

	for _, seed := range lowPoints(g, o.Topology) {
		if blocked(g.Get(seed)) {
			continue
		}
		id := len(basins) + 1
		mark[b.Index(seed)] = id
		members := []grid.Point{seed}
		stack := ascending(g, seed, o.Topology, nil)

		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			i := b.Index(p)
			if mark[i] == id || blocked(g.Get(p)) {
				continue
			}
			mark[i] = id
			members = append(members, p)
			stack = ascending(g, p, o.Topology, stack)
		}
		basins = append(basins, Basin{Seed: seed, Points: members})
	}
	return basins, nil
}

// Sizes returns the basin sizes sorted in descending order.
// Equal sizes keep no particular order relative to their basins.
func Sizes(basins []Basin) []int {
	sizes := make([]int, len(basins))
	for i, bs := range basins {
		sizes[i] = bs.Size()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}

// TopProduct multiplies the n largest basin sizes. With fewer than n basins
// it multiplies all of them; with none, or n <= 0, it returns 0.
func TopProduct(basins []Basin, n int) int {
	if n <= 0 || len(basins) == 0 {
		return 0
	}
	sizes := Sizes(basins)
	if n > len(sizes) {
		n = len(sizes)
	}
	product := 1
	for _, s := range sizes[:n] {
		product *= s
	}
	return product
}

func lowPoints[T constraints.Integer](g *grid.Grid[T], t grid.Topology) []grid.Point {
	var seeds []grid.Point
	for p, v := range g.Cells() {
		low := true
		for q := range g.Neighbors(p, t) {
			if g.Get(q) <= v {
				low = false
				break
			}
		}
		if low {
			seeds = append(seeds, p)
		}
	}
	return seeds
}

// ascending appends the in-bounds neighbors of p that are strictly higher.
func ascending[T constraints.Integer](g *grid.Grid[T], p grid.Point, t grid.Topology, dst []grid.Point) []grid.Point {
	h := g.Get(p)
	for q := range g.Neighbors(p, t) {
		if g.Get(q) > h {
			dst = append(dst, q)
		}
	}
	return dst
}
