// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count depths, parent links and visit order.
//
// What
//
//   - Explore cities in non-decreasing hop count from a source city.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  map from vertex → hops from the source
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - The whole reachable component is explored; the search does not stop
//     when some particular destination is dequeued. Any destination's route
//     is then read from the tree with Result.PathTo.
//   - Edge weights are ignored: the tree gives minimum-hop routes, not
//     minimum-distance routes.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbours sorted by ID and BFS enqueues
//	them in that order, so Order, Depth and Parent are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)  (sorting each adjacency row)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Ankara")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors, ctx or hook errors
//	}
//	route, err := res.PathTo("Izmir")
//
// Options
//
//   - WithContext(ctx)          cancellation (default context.Background()).
//   - WithMaxDepth(d)           do not enqueue beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn)    skip edges for which fn(curr, neighbor) == false.
//   - WithOnVisit(fn)           hook on every dequeued vertex; an error aborts.
package bfs
