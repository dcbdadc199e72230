// Package core provides the thread-safe, weighted, undirected city graph
// that every traversal in citypath runs over.
//
// The Graph G = (V,E) stores, for each city, a mapping from neighbouring
// city to a positive integer distance:
//
//	adjacency[a][b] = w  ⇔  adjacency[b][a] = w
//
// Every edge is written twice, once per endpoint, so the relation is
// symmetric by construction.
//
// Lifecycle:
//
//   - Build phase: a loader calls AddVertex for every city, then AddEdge for
//     every known road. AddEdge never creates vertices implicitly.
//   - Query phase: traversals call NeighborIDs / Weight. The graph is treated
//     as read-only; concurrent readers are safe under the RWMutex.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent: keeps existing edges
//	HasVertex(id string) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string, w int64) error // O(1), both endpoints must exist, w > 0
//	HasEdge(a, b string) bool           // O(1)
//	Weight(a, b string) (int64, error)  // O(1)
//
//	// Query
//	Neighbors(id string) (map[string]int64, error) // O(d), defensive copy
//	NeighborIDs(id string) ([]string, error)       // O(d·log d), sorted
//	Vertices() []string                            // O(V·log V), sorted
//	Degree(id string) (int, error)                 // O(1)
//	VertexCount() / EdgeCount() int                // O(1) / O(V)
//	Stats() *GraphStats                            // O(V)
//	Clone() *Graph                                 // O(V+E)
//
// Determinism:
//
//	NeighborIDs and Vertices return lexicographically sorted IDs. Traversals
//	enumerate neighbours through NeighborIDs, so repeated runs on the same
//	graph visit cities in the same order.
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – referenced city was never added
//	ErrEdgeNotFound    – no direct road between two cities
//	ErrBadWeight       – distance is zero or negative
//	ErrLoopNotAllowed  – road from a city to itself
package core
