package solver

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/lvlgrid/config"
	"github.com/katalvlaran/lvlgrid/fold"
)

func init() {
	Register(Puzzle{
		Day:   13,
		Title: "Transparent Origami",
		Solve: solveFolds,
		Sample: `6,10
0,14
9,10
0,3
10,4
4,11
6,0
6,12
4,1
0,13
10,12
3,4
3,0
8,4
1,10
2,14
8,10
9,0

fold along y=7
fold along x=5
`,
		Want: Answer{
			Part1: "17",
			Part2: "#####\n#...#\n#...#\n#...#\n#####\n.....\n.....",
		},
	})
}

var errNoFolds = errors.New("manual has no fold instructions")

// solveFolds counts dots after the first fold and renders the sheet after
// all of them.
func solveFolds(lines []string, cfg *config.Config) (Answer, error) {
	m, err := fold.ParseLines(lines)
	if err != nil {
		return Answer{}, err
	}
	if len(m.Folds) == 0 {
		return Answer{}, errNoFolds
	}
	first, err := fold.Fold(m.Sheet, m.Folds[0])
	if err != nil {
		return Answer{}, err
	}
	last, err := fold.Apply(m.Sheet, m.Folds)
	if err != nil {
		return Answer{}, err
	}
	log.WithField("folds", len(m.Folds)).Debug("sheet folded")

	on, off := cfg.Glyphs()
	return Answer{
		Part1: strconv.Itoa(fold.Occupied(first)),
		Part2: fold.Render(last, on, off),
	}, nil
}
