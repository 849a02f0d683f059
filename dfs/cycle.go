// SPDX-License-Identifier: MIT

package dfs

import (
	"github.com/katalvlaran/slink/core"
)

// HasCycle reports whether the undirected graph g contains a cycle.
// A second edge between the same pair of nodes is a cycle of length two.
//
// Complexity: O(V+E) time, O(V) memory.
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	n := g.NodeCount()
	state := make([]int, n)
	for v := 0; v < n; v++ {
		if state[v] != White {
			continue
		}
		found, err := backEdge(g, state, v, -1)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

// IsSpanningTree reports whether g is connected and acyclic, i.e. its edges
// form a spanning tree of all g.NodeCount() nodes. A graph with no nodes
// is not a tree; a single node with no edges is.
func IsSpanningTree(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	n := g.NodeCount()
	if n == 0 || g.EdgeCount() != n-1 {
		return false, nil
	}

	res, err := DFS(g, 0)
	if err != nil {
		return false, err
	}

	// n-1 edges reaching every node leaves no room for a cycle.
	return len(res.Order) == n, nil
}

// backEdge explores from id, arriving from parent, and reports whether an
// edge leads back to a Gray node other than through the tree edge.
func backEdge(g *core.Graph, state []int, id, parent int) (bool, error) {
	state[id] = Gray

	nbs, err := g.Neighbors(id)
	if err != nil {
		return false, err
	}

	treeEdgeSeen := false
	var next int
	for _, e := range nbs {
		next = e.Other(id)
		if next == parent && !treeEdgeSeen {
			treeEdgeSeen = true
			continue
		}
		switch state[next] {
		case Gray:
			return true, nil
		case White:
			found, err := backEdge(g, state, next, id)
			if err != nil || found {
				return found, err
			}
		}
	}
	state[id] = Black

	return false, nil
}
