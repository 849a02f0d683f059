package prim_kruskal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/slink/core"
)

// PrimDense computes the minimum spanning tree of the complete graph whose
// edge weights are the off-diagonal entries of the symmetric matrix m.
// An entry of +Inf means "no edge".
//
// Unlike Prim it never materialises an edge list: it keeps, for every node
// outside the tree, the cheapest known distance to the tree and the tree
// node realising it, and scans that array n-1 times. Ties go to the lower
// node index.
//
// Edges are returned in discovery order as (tree node, new node, weight).
// Complexity: O(V²) time, O(V) memory beyond m.
func PrimDense(m mat.Symmetric) ([]core.Edge, error) {
	if m == nil {
		return nil, ErrInvalidGraph
	}
	n := m.SymmetricDim()
	if n <= 1 {
		return []core.Edge{}, nil
	}

	inTree := make([]bool, n)
	best := make([]float64, n)
	from := make([]int, n)

	inTree[0] = true
	for j := 1; j < n; j++ {
		w := m.At(0, j)
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("PrimDense: m[0,%d]=%g: %w", j, w, core.ErrBadWeight)
		}
		best[j] = w
		from[j] = 0
	}

	edges := make([]core.Edge, 0, n-1)
	for len(edges) < n-1 {
		next := -1
		minDist := math.Inf(1)
		for j := 0; j < n; j++ {
			if !inTree[j] && best[j] < minDist {
				minDist = best[j]
				next = j
			}
		}
		if next == -1 {
			return nil, fmt.Errorf("PrimDense: reached %d of %d nodes: %w", len(edges)+1, n, ErrInsufficientEdges)
		}

		inTree[next] = true
		edges = append(edges, core.Edge{A: from[next], B: next, Weight: minDist})

		for k := 0; k < n; k++ {
			if inTree[k] {
				continue
			}
			d := m.At(next, k)
			if d < 0 || math.IsNaN(d) {
				return nil, fmt.Errorf("PrimDense: m[%d,%d]=%g: %w", next, k, d, core.ErrBadWeight)
			}
			if d < best[k] {
				best[k] = d
				from[k] = next
			}
		}
	}

	return edges, nil
}
