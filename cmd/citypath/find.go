package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citypath/finder"
	"github.com/katalvlaran/citypath/report"
)

const algoBoth = "both"

func newFindCmd(rf *rootFlags) *cobra.Command {
	var from, to, algorithm string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the route between two cities",
		Example: `  citypath find --from Adana --to Izmir
  citypath find --from Adana --to Izmir --algorithm bfs`,
		Args: cobra.NoArgs,
		RunE: withApp(rf, func(cmd *cobra.Command, a *app, _ []string) error {
			algo := a.cfg.Query.Algorithm
			if cmd.Flags().Changed("algorithm") {
				algo = algorithm
			}
			algos, err := selectAlgorithms(algo)
			if err != nil {
				return err
			}

			return runQuery(cmd.Context(), cmd.OutOrStdout(), a.finder, algos, from, to)
		}),
	}

	cmd.Flags().StringVar(&from, "from", "", "source city")
	cmd.Flags().StringVar(&to, "to", "", "destination city")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", algoBoth, "bfs|dfs|both")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// selectAlgorithms maps bfs, dfs or both, in any case, to the algorithms to run.
func selectAlgorithms(name string) ([]finder.Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == algoBoth {
		return finder.Algorithms(), nil
	}
	algo, err := finder.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return []finder.Algorithm{algo}, nil
}

// runQuery prints one report block per algorithm. A failed algorithm gets
// an error line and does not stop the others; the failures are returned joined.
func runQuery(ctx context.Context, w io.Writer, f *finder.Finder, algos []finder.Algorithm, from, to string) error {
	var errs []error
	for i, algo := range algos {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		res, err := f.FindPath(ctx, algo, from, to)
		if err != nil {
			errs = append(errs, err)
			if werr := report.WriteError(w, algo, err); werr != nil {
				return werr
			}
			continue
		}
		if err = report.Write(w, []*finder.Result{res}); err != nil {
			return err
		}
	}

	return errors.Join(errs...)
}
