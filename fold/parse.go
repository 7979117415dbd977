package fold

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/input"
)

const instructionPrefix = "fold along "

// ParseManual reads a manual from r: "x,y" dot lines, a blank line, then
// "fold along x=N" / "fold along y=N" lines. Errors name the 1-based line.
func ParseManual(r io.Reader) (*Manual, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines)
}

// ParseLines is ParseManual over lines already in memory.
func ParseLines(lines []string) (*Manual, error) {
	var (
		dots  []grid.Point
		folds []Instruction
		size  grid.Bounds
		// dots come first; a blank line or the first instruction ends them
		inFolds bool
	)
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			if len(dots) > 0 {
				inFolds = true
			}
			continue
		case strings.HasPrefix(line, instructionPrefix):
			inFolds = true
			in, err := ParseInstruction(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			folds = append(folds, in)
		case inFolds:
			return nil, fmt.Errorf("line %d: %w: %q", i+1, ErrMalformedInstruction, line)
		default:
			p, err := parsePoint(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			dots = append(dots, p)
			size.Width = max(size.Width, p.X+1)
			size.Height = max(size.Height, p.Y+1)
		}
	}

	sheet, err := grid.New(size, false)
	if err != nil {
		return nil, err
	}
	for _, p := range dots {
		sheet.Set(p, true)
	}
	return &Manual{Sheet: sheet, Folds: folds}, nil
}

// ParseInstruction parses "fold along x=N" or "fold along y=N".
func ParseInstruction(line string) (Instruction, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), instructionPrefix)
	if !ok {
		return Instruction{}, fmt.Errorf("%w: %q", ErrMalformedInstruction, line)
	}
	axis, num, ok := strings.Cut(rest, "=")
	if !ok {
		return Instruction{}, fmt.Errorf("%w: %q", ErrMalformedInstruction, line)
	}
	var in Instruction
	switch axis {
	case "x":
		in.Axis = X
	case "y":
		in.Axis = Y
	default:
		return Instruction{}, fmt.Errorf("%w: axis %q in %q", ErrMalformedInstruction, axis, line)
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return Instruction{}, fmt.Errorf("%w: position %q in %q", ErrMalformedInstruction, num, line)
	}
	in.Line = n
	return in, nil
}

func parsePoint(line string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(line, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, line)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return grid.Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, line)
	}
	return grid.Point{X: x, Y: y}, nil
}
