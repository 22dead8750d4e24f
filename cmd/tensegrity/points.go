package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kibbyd/tensegrity/internal/balance"
)

// #region points

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Print the balance-point reference table",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, spec := range balance.Specs() {
			fmt.Fprintf(out, "%s (%s)\n", spec.Label, spec.Key)
			fmt.Fprintf(out, "  balances: %s and %s\n", spec.Between[0], spec.Between[1])
			fmt.Fprintf(out, "  low:      %s\n", spec.Effects.Low)
			fmt.Fprintf(out, "  balanced: %s\n", spec.Effects.Balanced)
			fmt.Fprintf(out, "  high:     %s\n\n", spec.Effects.High)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pointsCmd)
}

// #endregion points
