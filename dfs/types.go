// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// Visitation states of a node.
const (
	White = iota // not discovered yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start id is out of range.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before it is appended to Order.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→next.
	// Return false to skip it.
	FilterNeighbor func(curr, next int) bool

	// FullTraversal restarts from every undiscovered node in ascending id
	// order, covering disconnected components.
	FullTraversal bool

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filter and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) { o.Ctx = ctx }
}

// WithOnVisit registers the pre-order hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit registers the post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits recursion depth. Negative values mean no limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor installs an edge filter.
func WithFilterNeighbor(fn func(curr, next int) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult collects the outcome of a traversal.
// Slices are indexed by node id; Parent is -1 for roots and undiscovered nodes.
type DFSResult struct {
	// Order is the post-order finish sequence.
	Order []int

	// Depth of each discovered node from its root; -1 if undiscovered.
	Depth []int

	// Parent of each discovered node in the DFS forest.
	Parent []int

	// Visited marks discovered nodes.
	Visited []bool

	// SkippedNeighbors mirrors DFSOptions.SkippedNeighbors after the run.
	SkippedNeighbors int
}

// PathTo walks Parent links from id back to its root and returns the path
// root→id. It returns nil if id was never discovered.
func (r *DFSResult) PathTo(id int) []int {
	if id < 0 || id >= len(r.Visited) || !r.Visited[id] {
		return nil
	}

	var path []int
	for cur := id; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
