// SPDX-License-Identifier: MIT

// Package core defines the node, edge and graph primitives shared by every
// slink package.
//
// Nodes are plain integers 0..n-1 that index into an external table of
// feature records; core never looks at the records themselves. An Edge is an
// unordered pair of distinct nodes with a non-negative, finite weight.
//
// Graph is an undirected, weighted multigraph over a fixed node range. It is
// built once (by the builder package, or from an edge list with FromEdges)
// and then read by the algorithms:
//
//	g, _ := core.NewGraph(4)
//	_ = g.AddEdge(0, 1, 1.0)
//	_ = g.AddEdge(1, 2, 2.0)
//	edges := g.Edges()      // insertion order, copied
//	nbrs, _ := g.NeighborIDs(1) // [0 2]
//
// Determinism
//
//   - Edges() returns edges in insertion order. The MST tie-break policy
//     (stable sort) relies on this.
//   - Neighbors() returns incident edges in insertion order; NeighborIDs()
//     returns unique ids in ascending order.
//
// Concurrency
//
//	A single sync.RWMutex guards the edge list and the adjacency index. The
//	adjacency index is built lazily on the first neighborhood query so that
//	complete graphs, which are only ever scanned as edge lists, do not pay
//	for it.
//
// Errors
//
//	ErrNegativeNodeCount - NewGraph(n) with n < 0.
//	ErrNodeOutOfRange    - an endpoint outside 0..n-1.
//	ErrLoopNotAllowed    - an edge whose endpoints are equal.
//	ErrBadWeight         - a negative, NaN or infinite weight.
package core
