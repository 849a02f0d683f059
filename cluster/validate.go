package cluster

import (
	"fmt"

	"github.com/katalvlaran/slink/core"
	"github.com/katalvlaran/slink/dfs"
)

// ValidateTree reports whether mst spans nodes 0..nodeCount-1 as a single
// tree: exactly nodeCount-1 edges, every node reachable, no cycle.
// Partition only counts edges; call ValidateTree when the tree comes from
// outside this module.
//
// Errors:
//   - ErrIncompleteTree if the edge count is wrong or the edges do not form
//     a connected acyclic graph.
//   - core.ErrNodeOutOfRange, core.ErrLoopNotAllowed or core.ErrBadWeight
//     for an edge that does not fit the node range.
//
// Complexity: O(V + E).
func ValidateTree(mst []core.Edge, nodeCount int) error {
	if nodeCount <= 0 || len(mst) != nodeCount-1 {
		return fmt.Errorf("ValidateTree: %d edges for %d nodes: %w", len(mst), nodeCount, ErrIncompleteTree)
	}
	g, err := core.FromEdges(nodeCount, mst)
	if err != nil {
		return fmt.Errorf("ValidateTree: %w", err)
	}
	ok, err := dfs.IsSpanningTree(g)
	if err != nil {
		return fmt.Errorf("ValidateTree: %w", err)
	}
	if !ok {
		return fmt.Errorf("ValidateTree: edges contain a cycle: %w", ErrIncompleteTree)
	}

	return nil
}
