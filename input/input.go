package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlgrid/grid"
)

// maxLine caps a single input line; puzzle inputs stay far below it.
const maxLine = 1 << 20

// Lines reads r line by line, trimming a trailing '\r' from each line.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read lines: %w", err)
	}
	return lines, nil
}

// TrimBlank drops leading and trailing blank lines.
func TrimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Blocks splits lines into runs separated by one or more blank lines.
func Blocks(lines []string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Digit decodes '0'..'9'; every other rune is dropped.
func Digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// Decode builds a grid from lines, ignoring leading and trailing blank lines.
func Decode[T any](lines []string, decode func(rune) (T, bool)) (*grid.Grid[T], error) {
	return grid.Build(TrimBlank(lines), decode)
}

// Digits reads a digit grid from r.
func Digits(r io.Reader) (*grid.Grid[int], error) {
	lines, err := Lines(r)
	if err != nil {
		return nil, err
	}
	return Decode(lines, Digit)
}
