package finder_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/finder"
)

func ExampleFinder_Compare() {
	g := core.NewGraph()
	for _, c := range []string{"Adana", "Mersin", "Konya", "Antalya"} {
		_ = g.AddVertex(c)
	}
	_ = g.AddEdge("Adana", "Mersin", 69)
	_ = g.AddEdge("Mersin", "Antalya", 480)
	_ = g.AddEdge("Adana", "Konya", 335)
	_ = g.AddEdge("Konya", "Antalya", 303)

	results, err := finder.New(g).Compare(context.Background(), "Adana", "Antalya")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range results {
		fmt.Println(r.Algorithm.Label(), r.Path, r.Distance, "km")
	}

	// Output:
	// BFS [Adana Konya Antalya] 638 km
	// DFS [Adana Mersin Antalya] 549 km
}
