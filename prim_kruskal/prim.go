package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/slink/core"
)

// Prim computes the minimum spanning tree of g by growing outwards from root
// using a min-heap of candidate edges.
//
// Steps:
//  1. Validate g != nil and root in 0..n-1 (an empty graph has no valid root).
//  2. n == 1: the MST is empty.
//  3. Mark root visited and push its incident edges.
//  4. Pop the lightest edge; skip it if its far endpoint is already visited,
//     otherwise accept it, mark the endpoint and push its incident edges.
//  5. Fewer than n-1 accepted edges when the heap drains → ErrInsufficientEdges.
//
// Edges are returned in discovery order, oriented so that A is the tree side.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root int) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	n := g.NodeCount()
	if !g.HasNode(root) {
		return nil, fmt.Errorf("Prim: root %d with %d nodes: %w", root, n, ErrRootOutOfRange)
	}
	if n == 1 {
		return []core.Edge{}, nil
	}

	visited := make([]bool, n)
	mst := make([]core.Edge, 0, n-1)
	pq := &edgePQ{}
	heap.Init(pq)

	push := func(from int) error {
		nbrs, err := g.Neighbors(from)
		if err != nil {
			return fmt.Errorf("Prim: %w", err)
		}
		for _, e := range nbrs {
			to := e.Other(from)
			if !visited[to] {
				heap.Push(pq, pqItem{edge: core.Edge{A: from, B: to, Weight: e.Weight}, seq: pq.next()})
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		it := heap.Pop(pq).(pqItem)
		v := it.edge.B
		if visited[v] {
			continue
		}
		visited[v] = true
		mst = append(mst, it.edge)
		if err := push(v); err != nil {
			return nil, err
		}
	}

	if len(mst) < n-1 {
		return nil, fmt.Errorf("Prim: reached %d of %d nodes: %w", len(mst)+1, n, ErrInsufficientEdges)
	}

	return mst, nil
}

// pqItem pairs a candidate edge with its push sequence number, used to break
// weight ties in push order.
type pqItem struct {
	edge core.Edge
	seq  int
}

// edgePQ implements heap.Interface for a min-heap of candidate edges ordered
// by (Weight, seq).
type edgePQ struct {
	items []pqItem
	seq   int
}

func (pq *edgePQ) next() int {
	pq.seq++
	return pq.seq
}

func (pq *edgePQ) Len() int { return len(pq.items) }

func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}

	return a.seq < b.seq
}

func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x any) { pq.items = append(pq.items, x.(pqItem)) }

func (pq *edgePQ) Pop() any {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}
