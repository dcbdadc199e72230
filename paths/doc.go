// Package paths turns a traversal's parent-pointer tree into an ordered
// route and measures it.
//
// What
//
//   - Build walks parent links backwards from the destination until it
//     reaches the source, then reverses the chain into source→destination
//     order.
//   - Distance sums the edge weights between consecutive route entries.
//   - Hops counts the edges of a route.
//
// Unreachable destinations
//
//	A destination that was never discovered has no parent entry. Rather than
//	returning the one-element pseudo-route [destination], Build reports
//	ErrPathNotFound. A chain that stops at some node other than the source,
//	or that revisits a node, is reported as ErrBrokenChain.
//
// Complexity
//
//   - Build:    Time O(L), Memory O(L) for a route of L nodes.
//   - Distance: Time O(L) weight lookups.
//
// Errors
//
//   - ErrPathNotFound   destination absent from the parent tree.
//   - ErrBrokenChain    parent links do not lead back to the source.
//   - errors from WeightLookup.Weight (core.ErrEdgeNotFound for a
//     non-adjacent pair), wrapped with the pair position.
package paths
