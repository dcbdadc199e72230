// Package citypath finds routes between cities in a road distance matrix.
//
// 🚀 What is citypath?
//
//	A small, thread-safe toolkit that brings together:
//		• Core graph: weighted undirected city network under a RW lock
//		• Loader: CSV distance matrix, 99999 meaning "no direct road"
//		• Traversals: BFS (fewest roads) and DFS (first route by stack order)
//		• Paths: parent-map reconstruction and route distance
//		• Finder: one query API over both traversals, with timing and metrics
//		• Front ends: cobra CLI, stdin prompt and a bubbletea form
//
// Neither traversal minimises kilometres. BFS minimises the number of roads;
// DFS returns whichever route its stack reaches first.
//
// Packages, leaf first:
//
//	core/    — Graph type, vertex and edge primitives, Stats
//	paths/   — Build (parent map → route), Distance, Hops
//	bfs/     — breadth-first search with hooks and depth limit
//	dfs/     — iterative depth-first search with early exit
//	loader/  — CSV matrix → core.Graph
//	finder/  — FindPath and Compare over BFS and DFS
//	metrics/ — Prometheus instruments for queries
//	config/, logging/, report/, tui/ — ambient and presentation layers
//	cmd/citypath — the command-line program
//
// Quick ASCII example, the matrix
//
//	,A,B,C,D
//	A,0,10,20,99999
//	B,10,0,5,99999
//	C,20,5,0,1
//	D,99999,99999,1,0
//
// is the network
//
//	A──10──B
//	 \     │
//	  20   5
//	    \  │
//	      C──1──D
//
// and both searches answer A→D with [A, C, D], 21 km.
//
//	go run ./cmd/citypath find --data data/cities.csv --from Adana --to Izmir
package citypath
