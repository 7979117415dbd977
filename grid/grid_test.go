package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/grid"
)

func digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

//----------------------------------------------------------------------------//
// Build Tests
//----------------------------------------------------------------------------//

// TestBuild_Errors verifies that Build rejects rows of differing decoded width.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"ShortSecondRow", []string{"123", "12"}},
		{"LongLastRow", []string{"12", "34", "567"}},
		{"DroppedRunesShorten", []string{"1 2 3", "4x5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Build(tc.rows, digit)
			if !errors.Is(err, grid.ErrInconsistentRowWidth) {
				t.Errorf("Build(%q) error = %v; want ErrInconsistentRowWidth", tc.rows, err)
			}
		})
	}
}

// TestBuild_ErrorNamesRow checks the wrapped message identifies the bad row.
func TestBuild_ErrorNamesRow(t *testing.T) {
	_, err := grid.Build([]string{"11", "22", "3"}, digit)
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 2")
}

// TestBuild_DropsUndecodable ensures dropped runes do not count toward width.
func TestBuild_DropsUndecodable(t *testing.T) {
	g, err := grid.Build([]string{"1,2,3", "4,5,6"}, digit)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)
	require.Equal(t, 6, g.Len())
	require.Equal(t, 5, g.Get(grid.Point{X: 1, Y: 1}))
}

// TestBuild_Empty accepts no rows as a 0×0 grid.
func TestBuild_Empty(t *testing.T) {
	g, err := grid.Build(nil, digit)
	require.NoError(t, err)
	require.Equal(t, grid.Bounds{}, g.Bounds())
	require.Zero(t, g.Len())
}

// TestNew_NegativeBounds rejects negative sizes.
func TestNew_NegativeBounds(t *testing.T) {
	_, err := grid.New(grid.Bounds{Width: -1, Height: 2}, 0)
	require.ErrorIs(t, err, grid.ErrNegativeBounds)
}

//----------------------------------------------------------------------------//
// Bounds Tests
//----------------------------------------------------------------------------//

// TestOffset checks translation on a 3×2 grid.
func TestOffset(t *testing.T) {
	b := grid.Bounds{Width: 3, Height: 2}
	cases := []struct {
		p    grid.Point
		d    grid.Offset
		want grid.Point
		ok   bool
	}{
		{grid.Point{X: 0, Y: 0}, grid.Offset{DX: 1, DY: 1}, grid.Point{X: 1, Y: 1}, true},
		{grid.Point{X: 2, Y: 1}, grid.Offset{DX: 0, DY: -1}, grid.Point{X: 2, Y: 0}, true},
		{grid.Point{X: 0, Y: 0}, grid.Offset{DX: -1, DY: 0}, grid.Point{}, false},
		{grid.Point{X: 2, Y: 0}, grid.Offset{DX: 1, DY: 0}, grid.Point{}, false},
		{grid.Point{X: 1, Y: 1}, grid.Offset{DX: 0, DY: 1}, grid.Point{}, false},
		{grid.Point{X: 1, Y: 0}, grid.Offset{DX: 0, DY: -1}, grid.Point{}, false},
	}
	for _, tc := range cases {
		got, ok := b.Offset(tc.p, tc.d)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Offset(%v,%v) = (%v,%v); want (%v,%v)", tc.p, tc.d, got, ok, tc.want, tc.ok)
		}
	}
}

// TestAllPoints verifies every point is produced exactly once in row-major
// order and that the sequence restarts identically.
func TestAllPoints(t *testing.T) {
	for _, b := range []grid.Bounds{{0, 0}, {1, 1}, {4, 3}, {1, 7}, {7, 1}} {
		var first []grid.Point
		seen := make(map[grid.Point]int)
		for p := range b.AllPoints() {
			first = append(first, p)
			seen[p]++
			require.True(t, b.Contains(p), "point %v outside %v", p, b)
		}
		require.Len(t, first, b.Len())
		require.Len(t, seen, b.Len())
		for i, p := range first {
			require.Equal(t, i, b.Index(p))
			require.Equal(t, p, b.Point(i))
		}

		var second []grid.Point
		for p := range b.AllPoints() {
			second = append(second, p)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("AllPoints(%v) not restartable (-first +second):\n%s", b, diff)
		}
	}
}

// TestAllPoints_EarlyBreak ensures the iterator honors a stop from the caller.
func TestAllPoints_EarlyBreak(t *testing.T) {
	n := 0
	for range (grid.Bounds{Width: 5, Height: 5}).AllPoints() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

//----------------------------------------------------------------------------//
// Topology Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Corners counts neighbors at corners, edges and interior.
func TestNeighbors_Corners(t *testing.T) {
	g, err := grid.New(grid.Bounds{Width: 3, Height: 3}, 0)
	require.NoError(t, err)

	count := func(p grid.Point, topo grid.Topology) int {
		n := 0
		for range g.Neighbors(p, topo) {
			n++
		}
		return n
	}
	require.Equal(t, 2, count(grid.Point{X: 0, Y: 0}, grid.Orthogonal))
	require.Equal(t, 3, count(grid.Point{X: 1, Y: 0}, grid.Orthogonal))
	require.Equal(t, 4, count(grid.Point{X: 1, Y: 1}, grid.Orthogonal))
	require.Equal(t, 3, count(grid.Point{X: 2, Y: 2}, grid.Full))
	require.Equal(t, 5, count(grid.Point{X: 0, Y: 1}, grid.Full))
	require.Equal(t, 8, count(grid.Point{X: 1, Y: 1}, grid.Full))
}

// TestNeighbors_SingleCell: a 1×1 grid has no neighbors under either topology.
func TestNeighbors_SingleCell(t *testing.T) {
	g, err := grid.Build([]string{"5"}, digit)
	require.NoError(t, err)
	for _, topo := range []grid.Topology{grid.Orthogonal, grid.Full} {
		for p := range g.Neighbors(grid.Point{}, topo) {
			t.Errorf("unexpected neighbor %v", p)
		}
	}
}

// TestNeighbors_Order checks orthogonal order: up, left, right, down.
func TestNeighbors_Order(t *testing.T) {
	b := grid.Bounds{Width: 3, Height: 3}
	var got []grid.Point
	for p := range b.Neighbors(grid.Point{X: 1, Y: 1}, grid.Orthogonal) {
		got = append(got, p)
	}
	want := []grid.Point{{1, 0}, {0, 1}, {2, 1}, {1, 2}}
	require.Equal(t, want, got)
}

//----------------------------------------------------------------------------//
// Mutation / Ownership Tests
//----------------------------------------------------------------------------//

// TestCloneIsolation verifies Set on a clone leaves the original untouched.
func TestCloneIsolation(t *testing.T) {
	g, err := grid.Build([]string{"12", "34"}, digit)
	require.NoError(t, err)
	c := g.Clone()
	require.True(t, grid.Equal(g, c))

	c.Set(grid.Point{X: 0, Y: 0}, 9)
	require.Equal(t, 1, g.Get(grid.Point{X: 0, Y: 0}))
	require.Equal(t, 9, c.Get(grid.Point{X: 0, Y: 0}))
	require.False(t, grid.Equal(g, c))
}

// TestAt reports absence outside the grid.
func TestAt(t *testing.T) {
	g, err := grid.Build([]string{"12", "34"}, digit)
	require.NoError(t, err)
	v, ok := g.At(grid.Point{X: 1, Y: 1})
	require.True(t, ok)
	require.Equal(t, 4, v)
	_, ok = g.At(grid.Point{X: 2, Y: 0})
	require.False(t, ok)
}

// TestCountMapRender exercises the helpers together.
func TestCountMapRender(t *testing.T) {
	g, err := grid.Build([]string{"101", "010"}, digit)
	require.NoError(t, err)
	on := grid.Map(g, func(v int) bool { return v == 1 })
	require.Equal(t, 3, on.Count(func(b bool) bool { return b }))

	out := grid.Render(on, func(b bool) rune {
		if b {
			return '#'
		}
		return '.'
	})
	require.Equal(t, strings.Join([]string{"#.#", ".#."}, "\n"), out)

	var pts []grid.Point
	for p, v := range on.Cells() {
		if v {
			pts = append(pts, p)
		}
	}
	require.Equal(t, []grid.Point{{0, 0}, {2, 0}, {1, 1}}, pts)
}
