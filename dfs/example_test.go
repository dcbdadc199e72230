package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dfs"
	"github.com/katalvlaran/citypath/paths"
)

// ExampleDFS shows the pop order and the route found between two cities.
//
//	Adana ── Mersin ── Antalya
//	  │                  │
//	Konya ───────────────┘
func ExampleDFS() {
	g := core.NewGraph()
	for _, c := range []string{"Adana", "Mersin", "Antalya", "Konya"} {
		_ = g.AddVertex(c)
	}
	_ = g.AddEdge("Adana", "Mersin", 69)
	_ = g.AddEdge("Mersin", "Antalya", 480)
	_ = g.AddEdge("Adana", "Konya", 335)
	_ = g.AddEdge("Konya", "Antalya", 303)

	res, err := dfs.DFS(g, "Adana", "Antalya")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	route, _ := res.PathTo()
	km, _ := paths.Distance(g, route)
	fmt.Println("popped:", res.Order)
	fmt.Println(route, km, "km")

	// Output:
	// popped: [Adana Mersin Antalya]
	// [Adana Mersin Antalya] 549 km
}
