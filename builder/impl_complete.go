// SPDX-License-Identifier: MIT
// Package: slink/builder
//
// impl_complete.go: Complete(points) and DistanceMatrix(points).
//
// Contract:
//   • len(points) ≥ 1 (else ErrTooFewVertices); equal, non-zero dimensions
//     (else ErrDimensionMismatch); finite features (else ErrBadFeature).
//   • Node i of the graph is points[i].
//   • Emits each unordered pair {i,j} with i<j exactly once, in
//     lexicographic (i,j) order: n·(n−1)/2 edges.
//   • Weight = cfg.distFn(points[i], points[j]); a non-finite or negative
//     result from a custom DistanceFn surfaces as core.ErrBadWeight.
//
// Complexity:
//   • Time: O(n²·d).
//   • Space: O(n²) edges (Complete) or matrix cells (DistanceMatrix).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/slink/core"
)

const (
	methodComplete       = "Complete"
	methodDistanceMatrix = "DistanceMatrix"
)

// PairCount returns n·(n−1)/2, the edge count of K_n; 0 for n < 2.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Complete builds the complete weighted graph over points.
func Complete(points [][]float64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	pts, err := cfg.prepare(methodComplete, points)
	if err != nil {
		return nil, err
	}

	n := len(pts)
	g, err := core.NewGraph(n, core.WithEdgeCapacity(PairCount(n)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	err = cfg.eachPair(pts, func(i, j int, w float64) error {
		return g.AddEdge(i, j, w)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	return g, nil
}

// CompleteEdges returns the edge list of Complete without building a graph,
// ready for prim_kruskal.Kruskal.
func CompleteEdges(points [][]float64, opts ...BuilderOption) ([]core.Edge, error) {
	cfg := newBuilderConfig(opts...)
	pts, err := cfg.prepare(methodComplete, points)
	if err != nil {
		return nil, err
	}

	n := len(pts)
	edges := make([]core.Edge, 0, PairCount(n))
	err = cfg.eachPair(pts, func(i, j int, w float64) error {
		e := core.NewEdge(i, j, w)
		if err := core.ValidateEdge(e, n); err != nil {
			return err
		}
		edges = append(edges, e)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}

	return edges, nil
}

// DistanceMatrix returns the symmetric n×n matrix of pairwise distances,
// zero on the diagonal.
func DistanceMatrix(points [][]float64, opts ...BuilderOption) (*mat.SymDense, error) {
	cfg := newBuilderConfig(opts...)
	pts, err := cfg.prepare(methodDistanceMatrix, points)
	if err != nil {
		return nil, err
	}

	n := len(pts)
	m := mat.NewSymDense(n, nil)
	err = cfg.eachPair(pts, func(i, j int, w float64) error {
		if err := core.ValidateEdge(core.NewEdge(i, j, w), n); err != nil {
			return err
		}
		m.SetSym(i, j, w)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistanceMatrix, err)
	}

	return m, nil
}

// eachPair calls fn for every i<j in lexicographic order with the distance
// between pts[i] and pts[j], stopping at the first error.
func (c builderConfig) eachPair(pts [][]float64, fn func(i, j int, w float64) error) error {
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if err := fn(i, j, c.distFn(pts[i], pts[j])); err != nil {
				return err
			}
		}
	}

	return nil
}
