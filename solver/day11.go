package solver

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlgrid/cascade"
	"github.com/katalvlaran/lvlgrid/config"
	"github.com/katalvlaran/lvlgrid/input"
)

func init() {
	Register(Puzzle{
		Day:   11,
		Title: "Dumbo Octopus",
		Solve: solveCascade,
		Sample: `5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`,
		Want: Answer{Part1: "1656", Part2: "195"},
	})
}

// solveCascade counts triggers over cfg.Steps steps, then keeps the same
// simulation going until the first synchronized step.
func solveCascade(lines []string, cfg *config.Config) (Answer, error) {
	g, err := input.Decode(lines, input.Digit)
	if err != nil {
		return Answer{}, err
	}
	sim, err := cascade.FromLevels(g, cascade.WithThreshold(cfg.Threshold))
	if err != nil {
		return Answer{}, err
	}
	total := sim.Run(cfg.Steps)
	sync, err := sim.FirstSync(cfg.SyncLimit)
	if err != nil {
		return Answer{}, err
	}
	log.WithFields(logrus.Fields{
		"cells": g.Len(),
		"steps": sim.Step(),
	}).Debug("cascade settled")

	return Answer{Part1: strconv.Itoa(total), Part2: strconv.Itoa(sync)}, nil
}
