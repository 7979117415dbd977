// Package fold defines fold instructions, the parsed manual and the errors of
// the fold transform.
package fold

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for folding and manual parsing.
var (
	// ErrFoldOutOfRange indicates a negative fold line.
	ErrFoldOutOfRange = errors.New("fold: fold line out of range")
	// ErrUnknownAxis indicates an axis other than X or Y.
	ErrUnknownAxis = errors.New("fold: unknown axis")
	// ErrMalformedPoint indicates a dot line that is not "x,y".
	ErrMalformedPoint = errors.New("fold: malformed point")
	// ErrMalformedInstruction indicates a line that is not "fold along x=N" or "fold along y=N".
	ErrMalformedInstruction = errors.New("fold: malformed instruction")
)

// Axis selects the coordinate a fold reflects.
type Axis uint8

const (
	// X folds along a vertical line x = Line; the left part survives.
	X Axis = iota + 1
	// Y folds along a horizontal line y = Line; the top part survives.
	Y
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Instruction is one fold: reflect everything beyond Line onto the part
// before it.
type Instruction struct {
	Axis Axis
	Line int
}

// String renders the instruction in manual syntax.
func (in Instruction) String() string {
	return fmt.Sprintf("fold along %s=%d", in.Axis, in.Line)
}

// Manual is a parsed transparent sheet plus its fold instructions.
type Manual struct {
	// Sheet marks occupied cells; its size is (max x + 1) × (max y + 1).
	Sheet *grid.Grid[bool]
	// Folds lists instructions in input order.
	Folds []Instruction
}
