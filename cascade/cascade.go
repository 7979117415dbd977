// Package cascade simulates a grid of accumulating counters in which any
// counter above a threshold discharges into its eight neighbors, possibly
// setting off a chain of further discharges within the same step.
package cascade

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Simulator owns a private copy of the grid and advances it step by step.
// It is not safe for concurrent use.
type Simulator struct {
	cells *grid.Grid[Level]
	opts  Options

	step     int // completed steps
	total    int // triggers over all completed steps
	last     int // triggers in the most recent step
	firstSyn int // first synchronized step, 0 if none seen yet

	queue []grid.Point
}

// New returns a Simulator over a clone of g; g itself is never modified.
func New(g *grid.Grid[Level], opts ...Option) (*Simulator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Simulator{cells: g.Clone(), opts: o}, nil
}

// FromLevels builds a Simulator whose every cell starts as Charging(v).
func FromLevels[T constraints.Integer](g *grid.Grid[T], opts ...Option) (*Simulator, error) {
	return New(grid.Map(g, func(v T) Level { return Charging(int(v)) }), opts...)
}

// Advance runs one step and returns the number of triggers in it.
//
//  1. Every cell gains one level; a Discharged cell restarts at Charging(1).
//  2. Every charging cell above the threshold discharges: it becomes
//     Discharged and each charging full-topology neighbor gains one level.
//     Neighbors pushed over the threshold discharge in turn, until no
//     charging cell is above the threshold.
//
// A cell discharges at most once per step, so the step always ends.
// Complexity: O(W·H·8).
func (s *Simulator) Advance() int {
	b := s.cells.Bounds()
	s.queue = s.queue[:0]

	for p, l := range s.cells.Cells() {
		var next Level
		switch l.Kind() {
		case KindCharging:
			next = Charging(l.level + 1)
		case KindDischarged:
			next = Charging(1)
		default:
			panic(fmt.Sprintf("cascade: unknown level kind %d", l.Kind()))
		}
		s.cells.Set(p, next)
		if next.level > s.opts.Threshold {
			s.queue = append(s.queue, p)
		}
	}

	triggers := 0
	for qi := 0; qi < len(s.queue); qi++ {
		p := s.queue[qi]
		if s.cells.Get(p).Kind() == KindDischarged {
			continue
		}
		s.cells.Set(p, Discharged())
		triggers++
		for q := range b.Neighbors(p, grid.Full) {
			n, ok := s.cells.Get(q).Charge()
			if !ok {
				continue
			}
			s.cells.Set(q, Charging(n+1))
			// queue only on the crossing; cells already above the
			// threshold are queued once
			if n == s.opts.Threshold {
				s.queue = append(s.queue, q)
			}
		}
	}

	s.step++
	s.total += triggers
	s.last = triggers
	if s.firstSyn == 0 && s.Synchronized() {
		s.firstSyn = s.step
	}
	return triggers
}

// Run advances n steps and returns the running trigger total.
func (s *Simulator) Run(n int) int {
	for i := 0; i < n; i++ {
		s.Advance()
	}
	return s.total
}

// FirstSync returns the 1-based index of the first step in which every cell
// triggered. Steps already taken count; if none of them was synchronized the
// simulator keeps advancing until step limit. ErrNoSync is returned when the
// limit is reached first.
func (s *Simulator) FirstSync(limit int) (int, error) {
	for s.firstSyn == 0 && s.step < limit {
		s.Advance()
	}
	if s.firstSyn == 0 {
		return 0, fmt.Errorf("%w: %d steps", ErrNoSync, limit)
	}
	return s.firstSyn, nil
}

// Synchronized reports whether every cell triggered in the most recent step.
// An empty grid is never synchronized.
func (s *Simulator) Synchronized() bool {
	return s.step > 0 && s.cells.Len() > 0 && s.last == s.cells.Len()
}

// Step returns the number of completed steps.
func (s *Simulator) Step() int { return s.step }

// Total returns the number of triggers over all completed steps.
func (s *Simulator) Total() int { return s.total }

// Last returns the number of triggers in the most recent step.
func (s *Simulator) Last() int { return s.last }

// Snapshot returns a copy of the current cell states.
func (s *Simulator) Snapshot() *grid.Grid[Level] {
	return s.cells.Clone()
}

// Energies returns the observable levels, with discharged cells at 0.
func (s *Simulator) Energies() *grid.Grid[int] {
	return grid.Map(s.cells, Level.Energy)
}
