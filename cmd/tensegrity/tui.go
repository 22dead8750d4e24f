package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kibbyd/tensegrity/internal/session"
	"github.com/kibbyd/tensegrity/internal/tui"
)

// #region tui

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal panel",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The panel owns the terminal; logging stays silent.
		ctrl := session.NewController(zap.NewNop(), nil)
		program := tea.NewProgram(tui.New(ctrl), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// #endregion tui
