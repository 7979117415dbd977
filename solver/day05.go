package solver

import (
	"strconv"

	"github.com/katalvlaran/lvlgrid/config"
	"github.com/katalvlaran/lvlgrid/overlay"
)

func init() {
	Register(Puzzle{
		Day:   5,
		Title: "Hydrothermal Venture",
		Solve: solveVents,
		Sample: `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
`,
		Want: Answer{Part1: "5", Part2: "12"},
	})
}

// solveVents counts overlapping vent cells, first with diagonals left out,
// then with them drawn.
func solveVents(lines []string, cfg *config.Config) (Answer, error) {
	segs, err := overlay.ParseLines(lines)
	if err != nil {
		return Answer{}, err
	}
	straight, err := overlay.Draw(segs, overlay.WithDiagonals(overlay.SkipDiagonals))
	if err != nil {
		return Answer{}, err
	}
	all, err := overlay.Draw(segs, overlay.WithDiagonals(overlay.DrawDiagonals))
	if err != nil {
		return Answer{}, err
	}
	log.WithField("segments", len(segs)).Debug("vents drawn")

	return Answer{
		Part1: strconv.Itoa(overlay.Overlaps(straight, cfg.MinOverlap)),
		Part2: strconv.Itoa(overlay.Overlaps(all, cfg.MinOverlap)),
	}, nil
}
