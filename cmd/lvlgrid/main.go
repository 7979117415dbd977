// Command lvlgrid solves the grid puzzles registered in the solver package.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
