package solver_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/config"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/solver"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestDays(t *testing.T) {
	assert.Equal(t, []int{5, 9, 11, 13}, solver.Days())
}

func TestCheck_AllSamples(t *testing.T) {
	solver.SetLogger(quietLogger())
	for _, day := range solver.Days() {
		_, err := solver.Check(day)
		assert.NoError(t, err, "day %d", day)
	}
}

func TestRun_Basins(t *testing.T) {
	p, err := solver.Lookup(9)
	require.NoError(t, err)
	ans, err := solver.Run(9, strings.NewReader(p.Sample), nil)
	require.NoError(t, err)
	assert.Equal(t, solver.Answer{Part1: "15", Part2: "1134"}, ans)
}

func TestRun_ConfigChangesAnswers(t *testing.T) {
	p, err := solver.Lookup(11)
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Steps = 10
	ans, err := solver.Run(11, strings.NewReader(p.Sample), cfg)
	require.NoError(t, err)
	assert.Equal(t, "204", ans.Part1)
	assert.Equal(t, "195", ans.Part2)

	cfg.SyncLimit = 100
	_, err = solver.Run(11, strings.NewReader(p.Sample), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 11")
}

func TestRun_FoldGlyphs(t *testing.T) {
	p, err := solver.Lookup(13)
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Render = config.Render{On: "█", Off: " "}
	ans, err := solver.Run(13, strings.NewReader(p.Sample), cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ans.Part2, "█████\n█   █"))
}

func TestRun_Errors(t *testing.T) {
	_, err := solver.Run(42, strings.NewReader(""), nil)
	require.ErrorIs(t, err, solver.ErrUnknownDay)

	_, err = solver.Run(9, strings.NewReader("123\n45\n"), nil)
	require.ErrorIs(t, err, grid.ErrInconsistentRowWidth)

	_, err = solver.Run(13, strings.NewReader("1,1\n"), nil)
	require.Error(t, err)
}

func TestRun_LogsWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	solver.SetLogger(l)
	defer solver.SetLogger(quietLogger())

	p, err := solver.Lookup(5)
	require.NoError(t, err)
	_, err = solver.Run(5, strings.NewReader(p.Sample), nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "day=5")
	assert.Contains(t, buf.String(), "segments=10")
}

func TestAnswerPart(t *testing.T) {
	a := solver.Answer{Part1: "a", Part2: "b"}
	got, err := a.Part(2)
	require.NoError(t, err)
	assert.Equal(t, "b", got)
	_, err = a.Part(3)
	assert.Error(t, err)
}

func TestRegister_Duplicate(t *testing.T) {
	assert.Panics(t, func() {
		solver.Register(solver.Puzzle{Day: 9, Solve: func([]string, *config.Config) (solver.Answer, error) {
			return solver.Answer{}, nil
		}})
	})
}
