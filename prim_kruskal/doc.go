// Package prim_kruskal computes minimum spanning trees over the int-indexed
// edge lists and graphs of package core.
//
// What & Why
//
//   - An MST of a connected, weighted, undirected graph G = (V, E) is a subset
//     T ⊆ E that connects every vertex with minimum total weight and no cycle.
//   - Single-link clustering into k groups is the MST with its k-1 heaviest
//     edges removed, so the MST is computed once and reused for every k.
//
// Algorithms Provided
//
//   - Kruskal(edges, nodeCount) ([]core.Edge, error)
//     Stable sort by ascending weight, then one scan that keeps every edge
//     whose endpoints dsu.Union reports as previously disconnected. Stops as
//     soon as nodeCount-1 edges are accepted. Output is in ascending weight
//     order, ready for cluster.Partition.
//     Time O(E log E + V log V), memory O(E + V).
//
//   - Prim(g, root) ([]core.Edge, error)
//     Grows one tree from root with a min-heap of candidate edges. Output is
//     in discovery order. Time O(E log E).
//
//   - PrimDense(m) ([]core.Edge, error)
//     O(V²) Prim over a dense symmetric distance matrix (gonum mat.Symmetric),
//     the natural choice when the graph is complete. Output is in discovery
//     order.
//
//   - Compute(g, opts) dispatches on MSTOptions.Method.
//
// Determinism
//
//	Kruskal sorts a copy of its input with a stable sort, so equal weights keep
//	their input order and the chosen tree is reproducible. Prim breaks heap
//	ties by the order edges were pushed.
//
// Error Conditions
//
//   - ErrInvalidGraph       : nil graph or negative node count.
//   - ErrInsufficientEdges  : the edges are exhausted before nodeCount-1 were
//     accepted (the graph is disconnected). Kruskal still returns the spanning
//     forest it built, alongside the error.
//   - dsu.ErrOutOfRange     : an edge endpoint outside 0..nodeCount-1 (Kruskal).
//   - core.ErrBadWeight     : a negative, NaN or infinite weight.
//   - ErrRootOutOfRange     : Prim root outside the node range.
//   - ErrUnknownMethod      : Compute with an unrecognised method.
package prim_kruskal
