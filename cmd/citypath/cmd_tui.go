package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/citypath/tui"
)

func newTUICmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive route form",
		Args:  cobra.NoArgs,
		RunE: withApp(rf, func(cmd *cobra.Command, a *app, _ []string) error {
			algos, err := selectAlgorithms(a.cfg.Query.Algorithm)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), a.finder, algos,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen())
		}),
	}
}
