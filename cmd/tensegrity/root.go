package main

import (
	"github.com/spf13/cobra"
)

// #region root

// configDir is the CLI --config-dir flag value.
var configDir string

var rootCmd = &cobra.Command{
	Use:   "tensegrity",
	Short: "Interactive four-force balance diamond",
	Long: `Tensegrity renders an organization's four balance points (value, direction,
exchange, operate) as a diamond between four stakeholder force fields, with a
structural-integrity score derived from aggregate imbalance.

The computation core is pure; serve and tui are two presentation surfaces
over the same engines.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"Directory containing tensegrity.yaml (default: working directory)")
}

// #endregion root
