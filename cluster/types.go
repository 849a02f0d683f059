package cluster

import "errors"

var (
	// ErrInvalidClusterCount is returned when k is outside 1..nodeCount.
	ErrInvalidClusterCount = errors.New("cluster: invalid cluster count")

	// ErrIncompleteTree is returned when the MST handed to Partition does not
	// hold exactly nodeCount-1 edges, i.e. the graph was not connected.
	ErrIncompleteTree = errors.New("cluster: spanning tree is incomplete")

	// ErrClusterCountMismatch is returned when the forest handed to Extract
	// has a number of connected components different from k.
	ErrClusterCountMismatch = errors.New("cluster: component count does not match k")
)

// Cluster is the set of node ids of one connected component of a pruned
// forest, in BFS visit order.
type Cluster []int

// Len reports the number of nodes in the cluster.
func (c Cluster) Len() int { return len(c) }
