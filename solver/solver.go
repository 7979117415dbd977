package solver

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlgrid/config"
	"github.com/katalvlaran/lvlgrid/input"
)

// Sentinel errors for puzzle lookup and sample checks.
var (
	// ErrUnknownDay indicates no puzzle is registered for the day.
	ErrUnknownDay = errors.New("solver: no puzzle registered for day")
	// ErrSampleMismatch indicates a puzzle disagreed with its own sample.
	ErrSampleMismatch = errors.New("solver: sample answer mismatch")
)

var log = logrus.New()

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Answer holds the two parts of a puzzle answer as printed text.
type Answer struct {
	Part1 string
	Part2 string
}

// Part returns part n (1 or 2).
func (a Answer) Part(n int) (string, error) {
	switch n {
	case 1:
		return a.Part1, nil
	case 2:
		return a.Part2, nil
	default:
		return "", fmt.Errorf("solver: part must be 1 or 2, got %d", n)
	}
}

// Puzzle is one registered day.
type Puzzle struct {
	Day   int
	Title string
	// Solve computes both parts from the input lines.
	Solve func(lines []string, cfg *config.Config) (Answer, error)
	// Sample is an example input whose answers under config.Default are Want.
	Sample string
	Want   Answer
}

var registry = map[int]Puzzle{}

// Register adds p to the registry. Registering a day twice panics; it is
// called from init functions only.
func Register(p Puzzle) {
	if _, dup := registry[p.Day]; dup {
		panic(fmt.Sprintf("solver: day %d registered twice", p.Day))
	}
	if p.Solve == nil {
		panic(fmt.Sprintf("solver: day %d has no Solve func", p.Day))
	}
	registry[p.Day] = p
}

// Lookup returns the puzzle for day.
func Lookup(day int) (Puzzle, error) {
	p, ok := registry[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return p, nil
}

// Days returns every registered day in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Run reads r and solves the puzzle for day.
func Run(day int, r io.Reader, cfg *config.Config) (Answer, error) {
	p, err := Lookup(day)
	if err != nil {
		return Answer{}, err
	}
	lines, err := input.Lines(r)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d: read: %w", day, err)
	}
	return p.run(lines, cfg)
}

// Check solves the puzzle's own sample with config.Default and compares the
// result to the recorded answers.
func Check(day int) (Answer, error) {
	p, err := Lookup(day)
	if err != nil {
		return Answer{}, err
	}
	lines, err := input.Lines(strings.NewReader(p.Sample))
	if err != nil {
		return Answer{}, fmt.Errorf("day %d: read sample: %w", day, err)
	}
	got, err := p.run(lines, config.Default())
	if err != nil {
		return Answer{}, err
	}
	if got != p.Want {
		return got, fmt.Errorf("%w: day %d got %+v, want %+v", ErrSampleMismatch, day, got, p.Want)
	}
	return got, nil
}

func (p Puzzle) run(lines []string, cfg *config.Config) (Answer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	entry := log.WithFields(logrus.Fields{
		"day":   p.Day,
		"title": p.Title,
		"lines": len(lines),
	})
	entry.Debug("solving")

	start := time.Now()
	ans, err := p.Solve(lines, cfg)
	if err != nil {
		entry.WithError(err).Warn("solve failed")
		return Answer{}, fmt.Errorf("day %d: %w", p.Day, err)
	}
	entry.WithField("elapsed", time.Since(start)).Debug("solved")
	return ans, nil
}
