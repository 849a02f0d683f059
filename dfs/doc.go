// Package dfs implements depth-first search over an undirected core.Graph,
// plus the forest and spanning-tree checks built on it.
//
// What:
//
//   - DFS(g, start, opts...): recursive traversal from start, or over every
//     component with WithFullTraversal. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting and neighbor filtering
//   - HasCycle(g): reports whether any component contains a cycle. Parallel
//     edges count as a cycle of length two.
//   - IsSpanningTree(g): true when g is connected and acyclic.
//
// Neighbors are explored in insertion order of the incident edges, so the
// traversal is deterministic for a fixed graph.
//
// Complexity:
//
//   - DFS:            Time O(V+E), Memory O(V)
//   - HasCycle:       Time O(V+E), Memory O(V)
//   - IsSpanningTree: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is outside 0..n-1.
//   - context errors          if the context is done.
//   - any error returned by OnVisit or OnExit, wrapped with the node id.
package dfs
