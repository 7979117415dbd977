// File: grid/regions_test.go
package grid

import (
	"reflect"
	"sort"
	"testing"
)

func ints(rows ...[]int) *Grid[int] {
	g := &Grid[int]{Height: len(rows)}
	if len(rows) > 0 {
		g.Width = len(rows[0])
	}
	for _, r := range rows {
		g.cells = append(g.cells, r...)
	}
	return g
}

func sameValue(a, b int) bool { return a == b }

func land(v int) bool { return v >= 1 }

// TestRegions_Simple4 tests Regions on a simple 4×3 grid with Orthogonal.
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2.
func TestRegions_Simple4(t *testing.T) {
	g := ints(
		[]int{0, 1, 1, 0},
		[]int{1, 1, 0, 0},
		[]int{0, 0, 1, 1},
	)
	regions := Regions(g, Orthogonal, sameValue, land)
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
}

// TestRegions_Diagonal8 connects corner-touching cells under Full.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestRegions_Diagonal8(t *testing.T) {
	g := ints(
		[]int{1, 0, 0, 0, 1},
		[]int{0, 1, 0, 1, 0},
		[]int{0, 0, 1, 0, 0},
		[]int{0, 1, 0, 1, 0},
		[]int{1, 0, 0, 0, 1},
	)
	regions := Regions(g, Full, sameValue, land)
	if len(regions) != 1 {
		t.Fatalf("got %d regions; want 1", len(regions))
	}
	if size := len(regions[0]); size != 9 {
		t.Errorf("region size = %d; want 9", size)
	}
	if got := len(Regions(g, Orthogonal, sameValue, land)); got != 9 {
		t.Errorf("orthogonal: got %d regions; want 9", got)
	}
}

// TestRegions_PartitionsAllCells: with include == nil every cell lands in
// exactly one region.
func TestRegions_PartitionsAllCells(t *testing.T) {
	g := ints(
		[]int{1, 1, 2},
		[]int{3, 2, 2},
	)
	regions := Regions(g, Orthogonal, sameValue, nil)
	seen := map[Point]bool{}
	for _, r := range regions {
		for _, p := range r {
			if seen[p] {
				t.Fatalf("point %v in two regions", p)
			}
			seen[p] = true
		}
	}
	if len(seen) != 6 {
		t.Errorf("covered %d cells; want 6", len(seen))
	}
	if len(regions) != 3 {
		t.Errorf("got %d regions; want 3", len(regions))
	}
	// first region starts at the first row-major cell
	if regions[0][0] != (Point{0, 0}) {
		t.Errorf("first region starts at %v; want (0,0)", regions[0][0])
	}
}

// TestRegions_EmptyAndAllWater covers the degenerate inputs.
func TestRegions_EmptyAndAllWater(t *testing.T) {
	if got := Regions(ints([]int{0, 0}, []int{0, 0}), Orthogonal, sameValue, land); len(got) != 0 {
		t.Errorf("all-water: got %d regions; want 0", len(got))
	}
	if got := Regions(ints(), Orthogonal, sameValue, nil); len(got) != 0 {
		t.Errorf("empty: got %d regions; want 0", len(got))
	}
	one := Regions(ints([]int{7}), Full, sameValue, nil)
	if len(one) != 1 || len(one[0]) != 1 {
		t.Errorf("single cell: got %v; want one region of size 1", one)
	}
}
