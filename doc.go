// Package slink clusters labelled feature vectors by single linkage and
// scores the result against the labels.
//
// Pipeline:
//
//	records ──builder──► complete graph ──prim_kruskal──► MST
//	MST ──cluster.Partition──► forest of k trees
//	forest ──cluster.Extract (bfs)──► k clusters ──purity──► score
//
// Packages:
//
//   - core:         undirected weighted graph over node ids 0..n-1
//   - dsu:          disjoint-set forest used by Kruskal
//   - prim_kruskal: minimum spanning tree (Kruskal, heap Prim, dense Prim)
//   - bfs, dfs:     traversals, connected components, tree checks
//   - builder:      complete graphs and distance matrices from points
//   - cluster:      MST partition and cluster extraction
//   - purity:       majority-label purity of a clustering
//   - segment, arff: the image-segmentation dataset and its file format
//   - singlelink:   the end-to-end pipeline with k sweeps
//   - config, report: settings and output for cmd/slink
//
// The root package holds no code.
package slink
