// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/slink/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components and start is ignored; otherwise it starts only from start.
// On error the partial result is returned alongside it.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.Ctx == nil {
		return nil, fmt.Errorf("dfs: nil context")
	}

	n := g.NodeCount()
	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("DFS(%d): %w", start, ErrStartVertexNotFound)
	}

	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	w := &dfsWalker{graph: g, opts: dopts, res: res}

	var err error
	if dopts.FullTraversal {
		for v := 0; v < n && err == nil; v++ {
			if !res.Visited[v] {
				err = w.traverse(v, 0)
			}
		}
	} else {
		err = w.traverse(start, 0)
	}
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, err
}

// traverse visits id at depth and recurses into undiscovered neighbors.
func (w *dfsWalker) traverse(id, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
		}

		var next int
		for _, e := range nbs {
			next = e.Other(id)
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, next) {
				w.opts.SkippedNeighbors++
				continue
			}
			if w.res.Visited[next] {
				continue
			}
			w.res.Parent[next] = id
			if err = w.traverse(next, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
