package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/solver"
)

var (
	runDay   int
	runInput string
	runPart  int
)

func init() {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Solve one day against an input file",
		Long: `Solve one registered day. Input is read from --input, or from stdin when
--input is empty or "-". Both parts are printed unless --part selects one.`,
		RunE: runRun,
	}
	runCmd.Flags().IntVarP(&runDay, "day", "d", 0, "day to solve")
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "input file (stdin when empty or -)")
	runCmd.Flags().IntVarP(&runPart, "part", "p", 0, "print only part 1 or 2")
	_ = runCmd.MarkFlagRequired("day")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if runInput != "" && runInput != "-" {
		f, err := os.Open(runInput)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	ans, err := solver.Run(runDay, r, cfg)
	if err != nil {
		return err
	}
	return printAnswer(cmd.OutOrStdout(), ans, runPart)
}

func printAnswer(w io.Writer, ans solver.Answer, part int) error {
	if part != 0 {
		s, err := ans.Part(part)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}
	_, err := fmt.Fprintf(w, "part 1: %s\npart 2: %s\n", ans.Part1, multiline(ans.Part2))
	return err
}

// multiline starts multi-row answers on their own line so rendered grids
// stay aligned.
func multiline(s string) string {
	for _, r := range s {
		if r == '\n' {
			return "\n" + s
		}
	}
	return s
}
