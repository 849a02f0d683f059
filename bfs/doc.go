// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node. Edge
//     weights are ignored; every edge is traversed in both directions.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - WithVisited shares a caller-owned visited marker across several
//     searches, which is how cluster extraction enumerates the connected
//     components of a forest in one pass.
//
// Determinism
//
//	core.Graph.NeighborIDs returns ids in ascending order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes reached, E = edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, 0)
//
//	result, err := bfs.BFS(
//	    g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node is outside the node range.
//   - ErrStartVisited         if the start node is already marked in WithVisited.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth,
//     visited marker of the wrong length).
//   - ErrNeighbors            if a neighborhood lookup fails.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() when the context is cancelled.
package bfs
