package cluster

import (
	"fmt"

	"github.com/katalvlaran/slink/core"
	"github.com/katalvlaran/slink/prim_kruskal"
)

// Partition removes the k-1 largest-weight edges of mst, a spanning tree over
// nodes 0..nodeCount-1, and returns the remaining nodeCount-k edges.
//
// mst is normally the ascending output of prim_kruskal.Kruskal, in which case
// this is a truncation of its tail. An mst that is not sorted by weight is
// stable-sorted on a copy first, so equal weights keep their input order and
// the later of two equal-weight edges is the one cut.
//
//	k == 1          → the whole tree
//	k == nodeCount  → no edges; every node is its own cluster
//
// Errors:
//   - ErrInvalidClusterCount if k <= 0 or k > nodeCount.
//   - ErrIncompleteTree if len(mst) != nodeCount-1.
//
// The result never aliases mst.
// Complexity: O(n) for sorted input, O(n log n) otherwise.
func Partition(mst []core.Edge, nodeCount, k int) ([]core.Edge, error) {
	if k <= 0 || k > nodeCount {
		return nil, fmt.Errorf("Partition: k=%d with %d nodes: %w", k, nodeCount, ErrInvalidClusterCount)
	}
	if len(mst) != nodeCount-1 {
		return nil, fmt.Errorf("Partition: %d edges for %d nodes: %w", len(mst), nodeCount, ErrIncompleteTree)
	}

	keep := nodeCount - k
	if prim_kruskal.IsSortedByWeight(mst) {
		out := make([]core.Edge, keep)
		copy(out, mst[:keep])

		return out, nil
	}

	sorted := make([]core.Edge, len(mst))
	copy(sorted, mst)
	prim_kruskal.SortByWeight(sorted)

	return sorted[:keep:keep], nil
}

// Cut returns the edges Partition removes for the same arguments, heaviest
// last. Their weights are the single-link merge distances between the k
// clusters; Cut(...)[0].Weight is the distance at which the k clusters
// would start merging.
func Cut(mst []core.Edge, nodeCount, k int) ([]core.Edge, error) {
	kept, err := Partition(mst, nodeCount, k)
	if err != nil {
		return nil, fmt.Errorf("Cut: %w", err)
	}
	sorted := mst
	if !prim_kruskal.IsSortedByWeight(mst) {
		sorted = make([]core.Edge, len(mst))
		copy(sorted, mst)
		prim_kruskal.SortByWeight(sorted)
	}
	out := make([]core.Edge, len(mst)-len(kept))
	copy(out, sorted[len(kept):])

	return out, nil
}
