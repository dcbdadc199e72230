// Package report renders query results in the console layout:
//
//	BFS Path: [A, C, D]
//	BFS Path Distance: 21 km
//	BFS Execution Time: 5400 nanoseconds
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/citypath/finder"
)

// Write prints one block per result, separated by a blank line.
func Write(w io.Writer, results []*finder.Result) error {
	for i, r := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := writeResult(w, r); err != nil {
			return err
		}
	}

	return nil
}

// WriteError prints a failed query for algo.
func WriteError(w io.Writer, algo finder.Algorithm, err error) error {
	_, werr := fmt.Fprintf(w, "%s Error: %v\n", algo.Label(), err)

	return werr
}

// FormatPath renders a route as [A, B, C].
func FormatPath(path []string) string {
	return "[" + strings.Join(path, ", ") + "]"
}

func writeResult(w io.Writer, r *finder.Result) error {
	label := r.Algorithm.Label()
	_, err := fmt.Fprintf(w, "%s Path: %s\n%s Path Distance: %d km\n%s Execution Time: %d nanoseconds\n",
		label, FormatPath(r.Path),
		label, r.Distance,
		label, r.Elapsed.Nanoseconds())

	return err
}
