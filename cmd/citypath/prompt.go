package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newPromptCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Ask for source and destination on stdin and print both routes",
		Args:  cobra.NoArgs,
		RunE: withApp(rf, func(cmd *cobra.Command, a *app, _ []string) error {
			algos, err := selectAlgorithms(a.cfg.Query.Algorithm)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			sc := bufio.NewScanner(cmd.InOrStdin())

			from, err := ask(sc, out, "Enter source city: ")
			if err != nil {
				return err
			}
			to, err := ask(sc, out, "Enter destination city: ")
			if err != nil {
				return err
			}

			return runQuery(cmd.Context(), out, a.finder, algos, from, to)
		}),
	}
}

func ask(sc *bufio.Scanner, w io.Writer, question string) (string, error) {
	if _, err := fmt.Fprint(w, question); err != nil {
		return "", err
	}
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
	}

	return sc.Text(), nil
}
