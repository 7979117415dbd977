package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/solver"
)

var sampleDay int

func init() {
	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Check days against their built-in samples",
		Long: `Solve the built-in sample of one day (--day) or of every registered day
and compare with the known answers. Exits non-zero on the first mismatch.`,
		Args: cobra.NoArgs,
		RunE: runSample,
	}
	sampleCmd.Flags().IntVarP(&sampleDay, "day", "d", 0, "day to check (all days when 0)")

	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}
	days := solver.Days()
	if sampleDay != 0 {
		days = []int{sampleDay}
	}
	for _, day := range days {
		if _, err := solver.Check(day); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "day %2d  ok\n", day)
	}
	return nil
}
