// Package dfs implements an iterative, stack-based depth-first search on a
// core.Graph that stops as soon as the destination is popped.
//
// What:
//
//   - DFS pushes the source, then repeatedly pops a city. If the popped city
//     is the destination the search ends; otherwise every unvisited
//     neighbour is marked, given a parent link and pushed.
//   - Vertices are marked visited when pushed, not when popped, so each city
//     receives exactly one parent: the city that first discovered it.
//   - With an empty destination DFS explores the whole component.
//
// Route quality:
//
//	The route read from the parent tree is whatever the stack order yields.
//	It is neither minimum-hop nor minimum-distance; compare with package bfs,
//	which always yields a minimum-hop route.
//
// Determinism:
//
//	Neighbours are pushed in core.Graph.NeighborIDs order (sorted by ID), so
//	the lexicographically largest neighbour is popped next. Repeated runs on
//	the same graph give the same tree.
//
// Complexity:
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V) for the stack and metadata maps.
//
// Options:
//
//   - WithContext(ctx)          cancellation via context.Context.
//   - WithOnVisit(fn)           hook on every pop; error aborts traversal.
//   - WithFilterNeighbor(fn)    return false to skip a neighbour ID.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if source is missing (wraps core.ErrVertexNotFound).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
