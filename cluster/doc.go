// Package cluster turns a minimum spanning tree into k single-link clusters.
//
// Single-link clustering merges the two groups whose closest members are
// nearest, repeatedly. Stopping at k groups is the same as cutting the k-1
// heaviest edges of the MST, so the work splits in two steps:
//
//   - Partition(mst, nodeCount, k) drops the k-1 heaviest MST edges and
//     returns the remaining forest of nodeCount-k edges.
//   - Extract(nodeCount, forest, k) recovers the node set of every tree in
//     that forest by breadth-first search (package bfs), scanning node ids
//     in ascending order so cluster numbering is deterministic.
//
// Both functions allocate fresh output and never retain or mutate their
// inputs, so one MST can be partitioned for many k values concurrently.
//
// Example:
//
//	mst, _ := prim_kruskal.Kruskal(edges, n)
//	forest, _ := cluster.Partition(mst, n, 7)
//	groups, _ := cluster.Extract(n, forest, 7)
package cluster
