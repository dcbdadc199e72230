package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dfs"
)

// BenchmarkDFS_Chain measures DFS to the far end of a chain of size N.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i <= N; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	dest := fmt.Sprintf("v%d", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "v0", dest)
	}
}
