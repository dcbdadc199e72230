package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// ExampleGraph builds a tiny road network and queries it.
func ExampleGraph() {
	g := core.NewGraph()
	for _, city := range []string{"Ankara", "Istanbul", "Izmir"} {
		_ = g.AddVertex(city)
	}
	_ = g.AddEdge("Ankara", "Istanbul", 453)
	_ = g.AddEdge("Istanbul", "Izmir", 482)

	nbrs, _ := g.NeighborIDs("Istanbul")
	fmt.Println("Istanbul neighbours:", nbrs)

	w, _ := g.Weight("Izmir", "Istanbul")
	fmt.Println("Izmir–Istanbul:", w, "km")

	_, err := g.Weight("Ankara", "Izmir")
	fmt.Println("Ankara–Izmir direct?", !errors.Is(err, core.ErrEdgeNotFound))

	// Output:
	// Istanbul neighbours: [Ankara Izmir]
	// Izmir–Istanbul: 482 km
	// Ankara–Izmir direct? false
}

// ExampleGraph_AddEdge shows that edges require registered endpoints.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_ = g.AddVertex("A")

	err := g.AddEdge("A", "B", 10)
	fmt.Println(errors.Is(err, core.ErrVertexNotFound))
	fmt.Println(g.VertexCount(), g.EdgeCount())

	// Output:
	// true
	// 1 0
}
