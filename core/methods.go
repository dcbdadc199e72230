// Package core: Graph method implementations.
//
// All mutating methods take the write lock; all queries take the read lock.
// Adjacency is a nested map, so existence checks, insertion and weight
// lookups are constant time.

package core

import (
	"fmt"
	"sort"
)

// AddVertex registers a vertex with an empty neighbour mapping.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists this is a no-op: its edges are kept.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		return nil // idempotent, never resets existing edges
	}
	g.adjacency[id] = make(map[string]int64)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// AddEdge connects a and b with the given weight, writing both directions.
// Both endpoints must have been added with AddVertex first.
// Re-adding an existing pair replaces its weight on both sides.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight, or
// ErrVertexNotFound (wrapped with the missing ID).
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string, weight int64) error {
	// 1) Input validation
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: %q–%q has weight %d", ErrBadWeight, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Both endpoints must already exist
	na, ok := g.adjacency[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	nb, ok := g.adjacency[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}

	// 3) Symmetric write
	na[b] = weight
	nb[a] = weight

	return nil
}

// HasEdge reports whether a and b are directly connected.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Weight returns the weight of edge a–b.
// Returns ErrVertexNotFound if a or b is missing, ErrEdgeNotFound if they
// are not adjacent.
// Complexity: O(1).
func (g *Graph) Weight(a, b string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	na, ok := g.adjacency[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	if _, ok = g.adjacency[b]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}
	w, ok := na[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q–%q", ErrEdgeNotFound, a, b)
	}

	return w, nil
}

// Neighbors returns a copy of the neighbour→weight mapping of id.
// Mutating the returned map does not affect the graph.
// Complexity: O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) (map[string]int64, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make(map[string]int64, len(nbrs))
	for nid, w := range nbrs {
		out[nid] = w
	}

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id in sorted order.
// This is the enumeration order used by every traversal.
// Complexity: O(d log d)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	ids := make([]string, 0, len(nbrs))
	for nid := range nbrs {
		ids = append(ids, nid)
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Degree returns the number of neighbours of id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(nbrs), nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges, each counted once.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	mirrored := 0
	for _, nbrs := range g.adjacency {
		mirrored += len(nbrs)
	}

	return mirrored / 2
}
