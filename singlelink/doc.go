// Package singlelink wires the clustering engine into one pipeline:
//
//	records → builder (complete graph) → prim_kruskal (MST)
//	        → cluster.Partition → cluster.Extract → purity
//
// New performs the k-independent part once: it builds the complete graph
// over the records' feature vectors and computes its MST. Run then clusters
// for a single k, and Sweep clusters for several k values concurrently. The
// MST is shared read-only between runs; every run allocates its own forest,
// visited markers and clusters, so no state crosses runs.
//
// Logging goes through a *slog.Logger (WithLogger), silent by default. Every
// record carries the pipeline's run_id, a random UUID, so the lines of
// concurrent sweeps can be told apart.
package singlelink
