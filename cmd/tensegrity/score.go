package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kibbyd/tensegrity/internal/balance"
	"github.com/kibbyd/tensegrity/internal/render"
	"github.com/kibbyd/tensegrity/internal/session"
)

var (
	scoreState balance.State
	scoreSVG   bool
)

// #region score

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute one frame from flag values and print it",
	Long: `Compute the diamond geometry and integrity report for a single balance
state without starting a server. Values outside [-50, 50] are clamped.
Prints the frame as JSON, or as an SVG document with --svg.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := session.NewController(zap.NewNop(), nil)
		frame := ctrl.Apply(scoreState)

		if scoreSVG {
			fmt.Fprint(cmd.OutOrStdout(), render.SVG(frame, render.DefaultOptions()))
			return nil
		}

		out, err := json.MarshalIndent(frame, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	scoreCmd.Flags().IntVar(&scoreState.Value, "value", 0, "value balance point")
	scoreCmd.Flags().IntVar(&scoreState.Direction, "direction", 0, "direction balance point")
	scoreCmd.Flags().IntVar(&scoreState.Exchange, "exchange", 0, "exchange balance point")
	scoreCmd.Flags().IntVar(&scoreState.Operate, "operate", 0, "operate balance point")
	scoreCmd.Flags().BoolVar(&scoreSVG, "svg", false, "emit an SVG document instead of JSON")
	rootCmd.AddCommand(scoreCmd)
}

// #endregion score
