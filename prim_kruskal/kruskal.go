package prim_kruskal

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/slink/core"
	"github.com/katalvlaran/slink/dsu"
)

// Kruskal computes the minimum spanning tree of the undirected graph on nodes
// 0..nodeCount-1 given by edges.
//
// Steps:
//  1. Validate nodeCount >= 0 and that every weight is finite and >= 0.
//  2. nodeCount <= 1: the MST is empty.
//  3. Stable-sort a copy of edges by ascending weight (input is not mutated;
//     equal weights keep their input order).
//  4. Create a fresh dsu.DisjointSet over nodeCount nodes.
//  5. Scan the sorted edges once; append every edge for which Union reports
//     a merge. Self-loops are rejected by Union and therefore skipped.
//  6. Stop as soon as nodeCount-1 edges are accepted.
//  7. If the scan ends early, return the spanning forest found so far together
//     with ErrInsufficientEdges.
//
// The returned edges are in ascending weight order and form a forest; a tree
// when the graph is connected.
//
// Complexity: O(E log E + V log V) time, O(E + V) memory.
func Kruskal(edges []core.Edge, nodeCount int) ([]core.Edge, error) {
	if nodeCount < 0 {
		return nil, fmt.Errorf("Kruskal: nodeCount=%d: %w", nodeCount, ErrInvalidGraph)
	}
	for i, e := range edges {
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("Kruskal: edge %d %v: %w", i, e, core.ErrBadWeight)
		}
	}
	if nodeCount <= 1 {
		return []core.Edge{}, nil
	}

	sorted := slices.Clone(edges)
	SortByWeight(sorted)

	set, err := dsu.New(nodeCount)
	if err != nil {
		return nil, fmt.Errorf("Kruskal: %w", err)
	}

	want := nodeCount - 1
	mst := make([]core.Edge, 0, want)
	for _, e := range sorted {
		merged, err := set.Union(e.A, e.B)
		if err != nil {
			return nil, fmt.Errorf("Kruskal: edge %v: %w", e, err)
		}
		if !merged {
			continue
		}
		mst = append(mst, e)
		if len(mst) == want {
			return mst, nil
		}
	}

	return mst, fmt.Errorf("Kruskal: accepted %d of %d edges over %d nodes: %w",
		len(mst), want, nodeCount, ErrInsufficientEdges)
}

// SortByWeight stably sorts edges by ascending weight in place.
func SortByWeight(edges []core.Edge) {
	slices.SortStableFunc(edges, func(x, y core.Edge) int {
		return cmp.Compare(x.Weight, y.Weight)
	})
}

// IsSortedByWeight reports whether edges are in ascending weight order.
func IsSortedByWeight(edges []core.Edge) bool {
	return slices.IsSortedFunc(edges, func(x, y core.Edge) int {
		return cmp.Compare(x.Weight, y.Weight)
	})
}
