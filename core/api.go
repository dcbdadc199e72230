// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only snapshots on top of the Graph type.
// Policy:
//   - No mutation of the receiver.
//   - Results are fresh values the caller owns.

package core

// Stats produces a deterministic snapshot of vertex/edge counts, weight
// range and the highest-degree vertex.
//
// Implementation:
//   - Stage 1: Acquire the read lock once.
//   - Stage 2: Scan each adjacency row; count each edge only from its
//     lexicographically smaller endpoint so mirrors are not double-counted.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{VertexCount: len(g.adjacency)}
	for id, nbrs := range g.adjacency {
		deg := len(nbrs)
		if deg == 0 {
			stats.IsolatedCount++
		}
		if deg > stats.MaxDegree || (deg == stats.MaxDegree && deg > 0 && id < stats.MaxDegreeVertex) {
			stats.MaxDegree = deg
			stats.MaxDegreeVertex = id
		}
		for nid, w := range nbrs {
			if id > nid {
				continue // mirror already counted from nid
			}
			stats.EdgeCount++
			stats.TotalWeight += w
			if stats.MinWeight == 0 || w < stats.MinWeight {
				stats.MinWeight = w
			}
			if w > stats.MaxWeight {
				stats.MaxWeight = w
			}
		}
	}

	return &stats
}

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{adjacency: make(map[string]map[string]int64, len(g.adjacency))}
	for id, nbrs := range g.adjacency {
		row := make(map[string]int64, len(nbrs))
		for nid, w := range nbrs {
			row[nid] = w
		}
		clone.adjacency[id] = row
	}

	return clone
}
