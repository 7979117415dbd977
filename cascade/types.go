// Package cascade defines the cell state, options and errors for threshold
// cascade simulation.
package cascade

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultThreshold is the level a cell must exceed to trigger.
const DefaultThreshold = 9

// Sentinel errors for cascade simulation.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cascade: invalid option supplied")

	// ErrNoSync is returned when no synchronized step occurs within the limit.
	ErrNoSync = errors.New("cascade: no synchronized step within limit")
)

// Kind tags the two states a cell can be in.
type Kind uint8

const (
	// KindCharging: the cell accumulates level and may trigger.
	KindCharging Kind = iota
	// KindDischarged: the cell triggered during the current step and cannot
	// trigger again until the next one.
	KindDischarged
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCharging:
		return "charging"
	case KindDischarged:
		return "discharged"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Level is the state of one cell: either Charging(n) or Discharged.
// Build values with Charging and Discharged; the zero Level is Charging(0).
type Level struct {
	kind  Kind
	level int
}

// Charging returns a charging cell at level n.
func Charging(n int) Level {
	return Level{kind: KindCharging, level: n}
}

// Discharged returns a cell that triggered in the current step.
func Discharged() Level {
	return Level{kind: KindDischarged}
}

// Kind reports which state l is in.
func (l Level) Kind() Kind {
	return l.kind
}

// Charge returns the level of a charging cell; ok is false for a
// discharged cell.
func (l Level) Charge() (n int, ok bool) {
	switch l.kind {
	case KindCharging:
		return l.level, true
	case KindDischarged:
		return 0, false
	default:
		panic(fmt.Sprintf("cascade: unknown level kind %d", l.kind))
	}
}

// Energy is the observable level of the cell: a discharged cell reads 0.
func (l Level) Energy() int {
	n, _ := l.Charge()
	return n
}

// String renders Charging(n) as n and Discharged as "X".
func (l Level) String() string {
	if n, ok := l.Charge(); ok {
		return strconv.Itoa(n)
	}
	return "X"
}

// Option configures a Simulator via functional arguments.
type Option func(*Options)

// Options holds simulation parameters.
type Options struct {
	// Threshold: a charging cell with level > Threshold triggers.
	Threshold int

	err error
}

// DefaultOptions returns Options with Threshold=DefaultThreshold.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// WithThreshold sets the trigger threshold.
//
//	n >= 0: cells above n trigger
//	n < 0:  invalid option → ErrOptionViolation
func WithThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: threshold cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Threshold = n
	}
}
