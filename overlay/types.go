// Package overlay defines segments, drawing options and errors for
// rasterizing line segments onto a count grid.
package overlay

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Sentinel errors for segment parsing and drawing.
var (
	// ErrMalformedSegment indicates a line that is not "x1,y1 -> x2,y2".
	ErrMalformedSegment = errors.New("overlay: malformed segment")
	// ErrDiagonalUnsupported is returned for a diagonal segment when the
	// drawing policy rejects diagonals.
	ErrDiagonalUnsupported = errors.New("overlay: diagonal segments unsupported by this operation")
	// ErrSkewSegment indicates a segment that is neither axis-aligned nor at 45°.
	ErrSkewSegment = errors.New("overlay: segment is neither axis-aligned nor diagonal")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("overlay: invalid option supplied")
)

// Kind classifies a segment by direction.
type Kind uint8

const (
	// Horizontal: both endpoints share Y.
	Horizontal Kind = iota
	// Vertical: both endpoints share X.
	Vertical
	// Diagonal: |dx| == |dy| > 0.
	Diagonal
	// Skew: anything else.
	Skew
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case Skew:
		return "skew"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Segment is a closed line segment between two endpoints.
// A zero-length segment (A == B) is Horizontal and covers one cell.
type Segment struct {
	A, B grid.Point
}

// String renders the segment in input syntax.
func (s Segment) String() string {
	return fmt.Sprintf("%d,%d -> %d,%d", s.A.X, s.A.Y, s.B.X, s.B.Y)
}

// DiagonalPolicy says what Draw does with diagonal segments.
type DiagonalPolicy uint8

const (
	// RejectDiagonals fails Draw with ErrDiagonalUnsupported.
	RejectDiagonals DiagonalPolicy = iota
	// SkipDiagonals leaves diagonal segments out of the grid on purpose.
	SkipDiagonals
	// DrawDiagonals rasterizes diagonal segments like any other.
	DrawDiagonals
)

// Option configures Draw via functional arguments.
type Option func(*Options)

// Options holds drawing parameters.
type Options struct {
	// Diagonals selects the diagonal policy; RejectDiagonals by default.
	Diagonals DiagonalPolicy

	err error
}

// DefaultOptions returns Options that reject diagonals.
func DefaultOptions() Options {
	return Options{Diagonals: RejectDiagonals}
}

// WithDiagonals sets the diagonal policy. Unknown policies are invalid.
func WithDiagonals(p DiagonalPolicy) Option {
	return func(o *Options) {
		switch p {
		case RejectDiagonals, SkipDiagonals, DrawDiagonals:
			o.Diagonals = p
		default:
			o.err = fmt.Errorf("%w: unknown diagonal policy %d", ErrOptionViolation, p)
		}
	}
}
