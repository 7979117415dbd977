package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/solver"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, day := range solver.Days() {
				p, err := solver.Lookup(day)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "day %2d  %s\n", p.Day, p.Title)
			}
			return nil
		},
	})
}
