// Package core defines the Graph type, its sentinel errors and statistics
// snapshot, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrBadWeight      - non-positive edge weight.
//	ErrLoopNotAllowed - self-loop requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates two vertices are not directly connected.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a zero or negative distance.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is an undirected graph of named vertices joined by weighted edges.
//
// adjacency[a][b] holds the weight of the edge a–b; the mirror entry
// adjacency[b][a] always carries the same weight.
type Graph struct {
	mu sync.RWMutex // guards adjacency

	// adjacency[vertexID][neighborID] = weight
	adjacency map[string]map[string]int64
}

// GraphStats is a read-only snapshot of graph size and weight range.
type GraphStats struct {
	VertexCount     int    // number of vertices
	EdgeCount       int    // number of undirected edges (each counted once)
	IsolatedCount   int    // vertices with no neighbours
	MinWeight       int64  // smallest edge weight, 0 if no edges
	MaxWeight       int64  // largest edge weight, 0 if no edges
	TotalWeight     int64  // sum of all edge weights, each edge counted once
	MaxDegree       int    // largest neighbour count over all vertices
	MaxDegreeVertex string // vertex holding MaxDegree, smallest ID on ties
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string]map[string]int64)}
}
