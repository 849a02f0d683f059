// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeCount indicates NewGraph was asked for fewer than zero nodes.
	ErrNegativeNodeCount = errors.New("core: negative node count")

	// ErrNodeOutOfRange indicates a node id outside 0..n-1.
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// Edge is an unordered pair of distinct nodes with a non-negative weight.
// Edges are values: once created they are never mutated.
type Edge struct {
	// A is the first endpoint.
	A int `json:"a"`

	// B is the second endpoint.
	B int `json:"b"`

	// Weight is the distance between the endpoints' feature vectors.
	Weight float64 `json:"weight"`
}

// NewEdge returns the Edge {a, b, w}.
func NewEdge(a, b int, w float64) Edge {
	return Edge{A: a, B: b, Weight: w}
}

// Other returns the endpoint of e opposite to n. If n is not an endpoint of
// e, Other returns -1.
func (e Edge) Other(n int) int {
	switch n {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		return -1
	}
}

// String renders e as "(a,b,w)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d,%g)", e.A, e.B, e.Weight)
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacity preallocates room for n edges. Builders that know the
// final edge count (n·(n-1)/2 for a complete graph) use it to avoid
// repeated growth of the edge slice.
func WithEdgeCapacity(n int) GraphOption {
	if n < 0 {
		panic(fmt.Sprintf("core: WithEdgeCapacity(%d): capacity must be >= 0", n))
	}
	return func(g *Graph) { g.edges = make([]Edge, 0, n) }
}

// Graph is an undirected, weighted graph over the fixed node range 0..n-1.
//
// mu guards edges and adjacency. adjacency is nil until the first
// neighborhood query and is dropped again by AddEdge.
type Graph struct {
	mu sync.RWMutex

	nodes int
	edges []Edge

	// adjacency[v] holds indexes into edges of every edge incident to v.
	adjacency [][]int
}

// NewGraph creates an empty graph over nodes 0..n-1.
// Complexity: O(1) plus any preallocation requested by opts.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrNegativeNodeCount)
	}
	g := &Graph{nodes: n}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// FromEdges builds a graph over n nodes containing edges, in order.
// The first invalid edge aborts construction.
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g, err := NewGraph(n, WithEdgeCapacity(len(edges)))
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.AddEdge(e.A, e.B, e.Weight); err != nil {
			return nil, fmt.Errorf("FromEdges: edge %d %v: %w", i, e, err)
		}
	}

	return g, nil
}
