package solver

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlgrid/basin"
	"github.com/katalvlaran/lvlgrid/config"
	"github.com/katalvlaran/lvlgrid/input"
)

func init() {
	Register(Puzzle{
		Day:   9,
		Title: "Smoke Basin",
		Solve: solveBasins,
		Sample: `2199943210
3987894921
9856789892
8767896789
9899965678
`,
		Want: Answer{Part1: "15", Part2: "1134"},
	})
}

func solveBasins(lines []string, cfg *config.Config) (Answer, error) {
	g, err := input.Decode(lines, input.Digit)
	if err != nil {
		return Answer{}, err
	}
	risk, err := basin.RiskLevel(g)
	if err != nil {
		return Answer{}, err
	}
	basins, err := basin.Basins(g, basin.WithBarrier(cfg.Barrier))
	if err != nil {
		return Answer{}, err
	}
	log.WithFields(logrus.Fields{
		"width":  g.Width,
		"height": g.Height,
		"basins": len(basins),
	}).Debug("basins found")

	return Answer{
		Part1: strconv.Itoa(risk),
		Part2: strconv.Itoa(basin.TopProduct(basins, cfg.TopBasins)),
	}, nil
}
