// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: edge lifecycle and read-only queries: AddEdge, Edges, EdgeCount,
//       NodeCount, HasNode, TotalWeight, ValidateEdge.
// Determinism:
//   - Edges() returns edges in insertion order.

package core

import (
	"fmt"
	"math"
)

// ValidateEdge reports whether e is a legal edge for a graph over n nodes.
//
// Errors:
//   - ErrNodeOutOfRange if either endpoint is outside 0..n-1.
//   - ErrLoopNotAllowed if e.A == e.B.
//   - ErrBadWeight if the weight is negative, NaN or infinite.
//
// Complexity: O(1).
func ValidateEdge(e Edge, n int) error {
	if e.A < 0 || e.A >= n {
		return fmt.Errorf("node %d not in [0,%d): %w", e.A, n, ErrNodeOutOfRange)
	}
	if e.B < 0 || e.B >= n {
		return fmt.Errorf("node %d not in [0,%d): %w", e.B, n, ErrNodeOutOfRange)
	}
	if e.A == e.B {
		return fmt.Errorf("node %d: %w", e.A, ErrLoopNotAllowed)
	}
	if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return fmt.Errorf("weight %g: %w", e.Weight, ErrBadWeight)
	}

	return nil
}

// AddEdge appends the undirected edge {a,b} with weight w.
// Parallel edges are accepted; MST construction keeps the lightest.
//
// Errors: see ValidateEdge.
// Complexity: O(1) amortized.
// Concurrency: takes the write lock; invalidates the adjacency index.
func (g *Graph) AddEdge(a, b int, w float64) error {
	e := Edge{A: a, B: b, Weight: w}
	if err := ValidateEdge(e, g.nodes); err != nil {
		return fmt.Errorf("AddEdge%v: %w", e, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.edges = append(g.edges, e)
	g.adjacency = nil

	return nil
}

// NodeCount returns n, the size of the node range.
// Complexity: O(1). The node range is fixed at construction.
func (g *Graph) NodeCount() int {
	return g.nodes
}

// HasNode reports whether id lies in 0..n-1.
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < g.nodes
}

// EdgeCount returns the number of edges added so far.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of the edge list in insertion order.
// Callers may sort or truncate the result freely.
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// TotalWeight returns the sum of the weights of edges.
// Complexity: O(len(edges)).
func TotalWeight(edges []Edge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}
