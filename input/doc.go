// Package input reads puzzle text: plain lines, blank-line separated blocks,
// and rectangular grids decoded rune by rune through grid.Build.
package input
