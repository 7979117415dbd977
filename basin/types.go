// Package basin provides tunable options, result types and error definitions
// for basin discovery over a grid of heights.
package basin

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

// DefaultBarrier is the height that blocks basin expansion in the cave
// height maps this package was built for.
const DefaultBarrier = 9

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("basin: invalid option supplied")

// Option configures basin discovery via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// analysis runs.
type Option func(*Options)

// Options holds the parameters of a basin analysis.
type Options struct {
	// Barrier is the height that never joins a basin.
	Barrier int64

	// Barriers disables the barrier check entirely when false.
	Barriers bool

	// Topology selects the neighbor offsets; grid.Orthogonal by default.
	Topology grid.Topology

	err error
}

// DefaultOptions returns Options with Barrier=DefaultBarrier enabled and
// orthogonal topology.
func DefaultOptions() Options {
	return Options{
		Barrier:  DefaultBarrier,
		Barriers: true,
		Topology: grid.Orthogonal,
	}
}

// WithBarrier sets the blocking height.
func WithBarrier(h int64) Option {
	return func(o *Options) {
		o.Barrier = h
		o.Barriers = true
	}
}

// WithoutBarrier lets basins grow over every ascending step.
func WithoutBarrier() Option {
	return func(o *Options) {
		o.Barriers = false
	}
}

// WithTopology selects the neighbor offsets. An empty topology is invalid.
func WithTopology(t grid.Topology) Option {
	return func(o *Options) {
		if len(t) == 0 {
			o.err = fmt.Errorf("%w: topology must not be empty", ErrOptionViolation)
			return
		}
		o.Topology = t
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Basin is one connected region grown from a seed.
type Basin struct {
	// Seed is the local minimum the basin was grown from.
	Seed grid.Point
	// Points lists members in discovery order; Points[0] == Seed.
	Points []grid.Point
}

// Size returns the number of points in the basin.
func (b Basin) Size() int {
	return len(b.Points)
}
