package input_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/input"
)

func TestLines_TrimsCR(t *testing.T) {
	lines, err := input.Lines(strings.NewReader("12\r\n34\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "34"}, lines)
}

func TestTrimBlank(t *testing.T) {
	got := input.TrimBlank([]string{"", "  ", "a", "", "b", "", ""})
	assert.Equal(t, []string{"a", "", "b"}, got)
	assert.Empty(t, input.TrimBlank([]string{"", ""}))
}

func TestBlocks(t *testing.T) {
	got := input.Blocks([]string{"", "1,2", "3,4", "", "", "fold along y=1", ""})
	assert.Equal(t, [][]string{{"1,2", "3,4"}, {"fold along y=1"}}, got)
	assert.Nil(t, input.Blocks(nil))
}

func TestDigit(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		v, ok := input.Digit(r)
		assert.True(t, ok)
		assert.Equal(t, int(r-'0'), v)
	}
	for _, r := range "a /-" {
		_, ok := input.Digit(r)
		assert.False(t, ok, "rune %q", r)
	}
}

func TestDigits(t *testing.T) {
	g, err := input.Digits(strings.NewReader("\n123\n456\n\n"))
	require.NoError(t, err)
	assert.Equal(t, grid.Bounds{Width: 3, Height: 2}, g.Bounds())
	assert.Equal(t, 6, g.Get(grid.Point{X: 2, Y: 1}))
}

func TestDigits_Ragged(t *testing.T) {
	_, err := input.Digits(strings.NewReader("123\n45\n"))
	require.ErrorIs(t, err, grid.ErrInconsistentRowWidth)
}
