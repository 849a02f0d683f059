// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: neighborhood queries (Neighbors, NeighborIDs) and the lazily built
//       adjacency index behind them.
// Determinism:
//   - Neighbors() keeps insertion order of the incident edges.
//   - NeighborIDs() returns unique ids in ascending order.

package core

import (
	"fmt"
	"slices"
)

// Neighbors returns every edge incident to id, in insertion order.
//
// Errors:
//   - ErrNodeOutOfRange if id is outside 0..n-1.
//
// Complexity: O(deg(id)) after a one-off O(V+E) index build.
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeOutOfRange)
	}

	adj := g.index()

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(adj[id]))
	for _, ei := range adj[id] {
		out = append(out, g.edges[ei])
	}

	return out, nil
}

// NeighborIDs returns the distinct nodes adjacent to id, ascending.
// Parallel edges contribute their endpoint once.
//
// Errors:
//   - ErrNodeOutOfRange if id is outside 0..n-1.
//
// Complexity: O(d log d) where d = deg(id).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.Other(id))
	}
	slices.Sort(ids)

	return slices.Compact(ids), nil
}

// Degree returns the number of edges incident to id (parallel edges counted).
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeOutOfRange)
	}
	adj := g.index()

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(adj[id]), nil
}

// index returns the adjacency index, building it under the write lock on
// first use after a mutation.
func (g *Graph) index() [][]int {
	g.mu.RLock()
	adj := g.adjacency
	g.mu.RUnlock()
	if adj != nil {
		return adj
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Another reader may have built it while we waited for the lock.
	if g.adjacency != nil {
		return g.adjacency
	}
	adj = make([][]int, g.nodes)
	for i, e := range g.edges {
		adj[e.A] = append(adj[e.A], i)
		adj[e.B] = append(adj[e.B], i)
	}
	g.adjacency = adj

	return adj
}
