package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newCitiesCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the loaded cities and their direct roads",
		Args:  cobra.NoArgs,
		RunE: withApp(rf, func(cmd *cobra.Command, a *app, _ []string) error {
			t := table.New().
				Border(lipgloss.HiddenBorder()).
				Headers("CITY", "ROADS")
			for _, c := range a.graph.Vertices() {
				d, err := a.graph.Degree(c)
				if err != nil {
					return err
				}
				t.Row(c, strconv.Itoa(d))
			}

			s := a.graph.Stats()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%d cities, %d roads, %d km total, busiest %s (%d)\n",
				t.Render(), s.VertexCount, s.EdgeCount, s.TotalWeight, s.MaxDegreeVertex, s.MaxDegree)

			return err
		}),
	}
}
