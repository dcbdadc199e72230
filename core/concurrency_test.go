// Package core_test verifies thread-safety of core.Graph under concurrent use.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypath/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from a hub
// vertex are safe and all neighbours appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.AddVertex("X"))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id+1))
		}(i)
	}
	wg.Wait()

	ids, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, ids, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders runs many readers against a fixed graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))

	const readers = 50
	errs := make(chan error, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			if _, err := g.NeighborIDs("B"); err != nil {
				errs <- err
				return
			}
			if _, err := g.Weight("B", "C"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent read: %v", err)
	}
}
