// Package overlay rasterizes axis-aligned and diagonal segments onto a grid
// that counts how many segments cover each cell.
package overlay

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/input"
)

// Kind classifies s.
func (s Segment) Kind() Kind {
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	switch {
	case dy == 0:
		return Horizontal
	case dx == 0:
		return Vertical
	case abs(dx) == abs(dy):
		return Diagonal
	default:
		return Skew
	}
}

// Points returns every cell the segment covers, from A to B inclusive.
// Skew segments have no cell walk and yield ErrSkewSegment.
func (s Segment) Points() ([]grid.Point, error) {
	if s.Kind() == Skew {
		return nil, fmt.Errorf("%w: %s", ErrSkewSegment, s)
	}
	d := grid.Offset{DX: sign(s.B.X - s.A.X), DY: sign(s.B.Y - s.A.Y)}
	n := max(abs(s.B.X-s.A.X), abs(s.B.Y-s.A.Y))
	pts := make([]grid.Point, 0, n+1)
	for p, i := s.A, 0; i <= n; p, i = p.Add(d), i+1 {
		pts = append(pts, p)
	}
	return pts, nil
}

// Draw sizes a grid to fit every drawn endpoint and adds one to each cell per
// segment covering it. Diagonal segments follow the configured policy;
// skew segments always fail. Nothing is drawn when an error is returned.
// Complexity: O(W·H + total segment length).
func Draw(segments []Segment, opts ...Option) (*grid.Grid[int], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var (
		size  grid.Bounds
		walks [][]grid.Point
	)
	for i, s := range segments {
		if s.A.X < 0 || s.A.Y < 0 || s.B.X < 0 || s.B.Y < 0 {
			return nil, fmt.Errorf("segment %d: %w: negative coordinate in %s", i, ErrMalformedSegment, s)
		}
		if s.Kind() == Diagonal {
			switch o.Diagonals {
			case RejectDiagonals:
				return nil, fmt.Errorf("segment %d: %w: %s", i, ErrDiagonalUnsupported, s)
			case SkipDiagonals:
				continue
			case DrawDiagonals:
			}
		}
		pts, err := s.Points()
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		size.Width = max(size.Width, s.A.X+1, s.B.X+1)
		size.Height = max(size.Height, s.A.Y+1, s.B.Y+1)
		walks = append(walks, pts)
	}

	g, err := grid.New(size, 0)
	if err != nil {
		return nil, err
	}
	for _, pts := range walks {
		for _, p := range pts {
			g.Set(p, g.Get(p)+1)
		}
	}
	return g, nil
}

// Overlaps counts cells covered by at least atLeast segments.
func Overlaps(g *grid.Grid[int], atLeast int) int {
	return g.Count(func(n int) bool { return n >= atLeast })
}

// ParseSegments reads "x1,y1 -> x2,y2" lines from r; blank lines are skipped.
func ParseSegments(r io.Reader) ([]Segment, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines)
}

// ParseLines is ParseSegments over lines already in memory.
func ParseLines(lines []string) ([]Segment, error) {
	var segs []Segment
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s, err := ParseSegment(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		segs = append(segs, s)
	}
	return segs, nil
}

// ParseSegment parses one "x1,y1 -> x2,y2" line.
func ParseSegment(line string) (Segment, error) {
	from, to, ok := strings.Cut(line, "->")
	if !ok {
		return Segment{}, fmt.Errorf("%w: %q", ErrMalformedSegment, line)
	}
	a, errA := parsePoint(from)
	b, errB := parsePoint(to)
	if errA != nil || errB != nil {
		return Segment{}, fmt.Errorf("%w: %q", ErrMalformedSegment, line)
	}
	return Segment{A: a, B: b}, nil
}

func parsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Point{}, ErrMalformedSegment
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil || x < 0 {
		return grid.Point{}, ErrMalformedSegment
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil || y < 0 {
		return grid.Point{}, ErrMalformedSegment
	}
	return grid.Point{X: x, Y: y}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
