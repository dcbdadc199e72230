package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/config"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/finder"
	"github.com/katalvlaran/citypath/loader"
	"github.com/katalvlaran/citypath/paths"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestFind_Both(t *testing.T) {
	out, _, err := run(t, "", "find", "--data", "testdata/cities.csv", "--from", "Adana", "--to", "Izmir")
	require.NoError(t, err)

	assert.Contains(t, out, "BFS Path: [Adana, Konya, Antalya, Izmir]\nBFS Path Distance: 1093 km\nBFS Execution Time: ")
	assert.Contains(t, out, "\n\nDFS Path: [Adana, Mersin, Antalya, Izmir]\nDFS Path Distance: 1004 km\nDFS Execution Time: ")
	assert.Regexp(t, `DFS Execution Time: \d+ nanoseconds\n$`, out)
}

func TestFind_SingleAlgorithm(t *testing.T) {
	out, _, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "D", "-a", "dfs")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "DFS Path: [A, C, D]\nDFS Path Distance: 21 km\n"), out)
	assert.NotContains(t, out, "BFS")
}

func TestFind_AlgorithmCaseInsensitive(t *testing.T) {
	for _, name := range []string{"BOTH", "Both", " both "} {
		out, _, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "D", "-a", name)
		require.NoError(t, err, name)
		assert.Contains(t, out, "BFS Path: [A, C, D]")
		assert.Contains(t, out, "DFS Path: [A, C, D]")
	}
	out, _, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "D", "-a", "DFS")
	require.NoError(t, err)
	assert.NotContains(t, out, "BFS")
}

func TestFind_MaxHops(t *testing.T) {
	out, _, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "D", "--max-hops", "1")
	assert.ErrorIs(t, err, paths.ErrPathNotFound)
	assert.Contains(t, out, "BFS Error: ")
	assert.Contains(t, out, "DFS Error: ")

	out, _, err = run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "D", "--max-hops", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "BFS Path: [A, C, D]")

	_, _, err = run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "D", "--max-hops", "-1")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestFind_Errors(t *testing.T) {
	t.Run("unknown destination", func(t *testing.T) {
		out, _, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "Z")
		assert.ErrorIs(t, err, paths.ErrPathNotFound)
		assert.Contains(t, out, "BFS Error: ")
		assert.Contains(t, out, "DFS Error: ")
	})
	t.Run("unknown source", func(t *testing.T) {
		_, _, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "Z", "--to", "A")
		assert.ErrorIs(t, err, core.ErrVertexNotFound)
	})
	t.Run("unknown algorithm", func(t *testing.T) {
		_, _, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "D", "-a", "astar")
		assert.ErrorIs(t, err, finder.ErrUnknownAlgorithm)
	})
	t.Run("missing flag", func(t *testing.T) {
		_, _, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A")
		assert.ErrorContains(t, err, `"to"`)
	})
	t.Run("missing data", func(t *testing.T) {
		_, _, err := run(t, "", "find", "--data", "testdata/none.csv", "--from", "A", "--to", "D")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("bad log level", func(t *testing.T) {
		_, _, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "D", "--log-level", "loud")
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
}

func TestFind_StrictSymmetryFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "citypath.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data:\n  path: testdata/asymmetric.csv\n  strict_symmetry: true\n"), 0o600))

	_, _, err := run(t, "", "find", "--config", cfgPath, "--from", "A", "--to", "B")
	assert.ErrorIs(t, err, loader.ErrAsymmetric)
}

func TestFind_LogsJSON(t *testing.T) {
	_, stderr, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "D",
		"--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"graph loaded"`)
	assert.Contains(t, stderr, `"vertices":4`)
	assert.Contains(t, stderr, `"msg":"path query"`)
}

func TestFind_MetricsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "citypath.prom")
	_, _, err := run(t, "", "find", "--data", "testdata/scenario.csv", "--from", "A", "--to", "D", "--metrics-file", file)
	require.NoError(t, err)

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `citypath_queries_total{algorithm="bfs",status="ok"} 1`)
	assert.Contains(t, text, `citypath_queries_total{algorithm="dfs",status="ok"} 1`)
	assert.Contains(t, text, "citypath_graph_vertices 4")
	assert.Contains(t, text, "citypath_graph_edges 4")
}

func TestPrompt(t *testing.T) {
	out, _, err := run(t, "Adana\nIzmir\n", "prompt", "--data", "testdata/cities.csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Enter source city: Enter destination city: BFS Path: [Adana, Konya, Antalya, Izmir]\n"), out)
	assert.Contains(t, out, "DFS Path Distance: 1004 km")
}

// TestPrompt_ExactNames checks that typed names are not trimmed or folded.
func TestPrompt_ExactNames(t *testing.T) {
	out, _, err := run(t, "Adana\n Izmir\n", "prompt", "--data", "testdata/cities.csv")
	assert.ErrorIs(t, err, paths.ErrPathNotFound)
	assert.Contains(t, out, "BFS Error: ")

	_, _, err = run(t, "adana\nIzmir\n", "prompt", "--data", "testdata/cities.csv")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestPrompt_EOF(t *testing.T) {
	_, _, err := run(t, "Adana\n", "prompt", "--data", "testdata/cities.csv")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestCities(t *testing.T) {
	out, _, err := run(t, "", "cities", "--data", "testdata/cities.csv")
	require.NoError(t, err)

	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		if f := strings.Fields(line); len(f) > 0 {
			rows = append(rows, f)
		}
	}
	require.Len(t, rows, 11)
	assert.Equal(t, []string{"CITY", "ROADS"}, rows[0])
	assert.Equal(t, []string{"Adana", "3"}, rows[1])
	assert.Equal(t, []string{"Ankara", "4"}, rows[2])
	assert.Equal(t, []string{"Mersin", "2"}, rows[9])
	assert.Contains(t, out, "9 cities, 13 roads, 4055 km total, busiest Ankara (4)\n")
}
