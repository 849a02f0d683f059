package cluster

import (
	"context"
	"fmt"

	"github.com/katalvlaran/slink/bfs"
	"github.com/katalvlaran/slink/core"
)

// Extract recovers the k clusters of a pruned forest over nodes
// 0..nodeCount-1. See ExtractContext.
func Extract(nodeCount int, forest []core.Edge, k int) ([]Cluster, error) {
	return ExtractContext(context.Background(), nodeCount, forest, k)
}

// ExtractContext builds the undirected adjacency implied by forest and runs a
// breadth-first search from every node not yet reached, in ascending id
// order. Each search yields one cluster, listing its nodes in visit order.
// Every node lands in exactly one cluster.
//
// Errors:
//   - ErrInvalidClusterCount if k <= 0 or k > nodeCount.
//   - core.ErrNodeOutOfRange, core.ErrLoopNotAllowed or core.ErrBadWeight
//     for a forest edge that does not fit the node range.
//   - ErrClusterCountMismatch if the forest has other than k components.
//   - ctx.Err() if ctx is cancelled during the traversal.
//
// Complexity: O(V + E).
func ExtractContext(ctx context.Context, nodeCount int, forest []core.Edge, k int) ([]Cluster, error) {
	if k <= 0 || k > nodeCount {
		return nil, fmt.Errorf("Extract: k=%d with %d nodes: %w", k, nodeCount, ErrInvalidClusterCount)
	}
	g, err := core.FromEdges(nodeCount, forest)
	if err != nil {
		return nil, fmt.Errorf("Extract: %w", err)
	}

	comps, err := bfs.Components(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("Extract: %w", err)
	}
	if len(comps) != k {
		return nil, fmt.Errorf("Extract: found %d components, want %d: %w", len(comps), k, ErrClusterCountMismatch)
	}

	out := make([]Cluster, len(comps))
	for i, c := range comps {
		out[i] = Cluster(c)
	}

	return out, nil
}

// Assignments maps every node id in 0..nodeCount-1 to the index of the
// cluster containing it, or -1 if no cluster does. Ids outside the range
// are ignored.
func Assignments(clusters []Cluster, nodeCount int) []int {
	out := make([]int, nodeCount)
	for i := range out {
		out[i] = -1
	}
	for ci, c := range clusters {
		for _, id := range c {
			if id >= 0 && id < nodeCount {
				out[id] = ci
			}
		}
	}

	return out
}
