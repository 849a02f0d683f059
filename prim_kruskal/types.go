package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slink/core"
)

// ErrInvalidGraph indicates a nil graph or a negative node count.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph")

// ErrInsufficientEdges indicates that the edge list ran out before a spanning
// tree covering every node was found: the graph is not connected.
var ErrInsufficientEdges = errors.New("prim_kruskal: insufficient edges to span all nodes")

// ErrRootOutOfRange indicates a Prim root outside 0..n-1.
var ErrRootOutOfRange = errors.New("prim_kruskal: root out of range")

// ErrUnknownMethod indicates an MSTOptions.Method that is neither
// MethodKruskal nor MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's
// algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal rooted at node 0, with any
// opts applied in order.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute runs the MST algorithm selected by opts.Method over g.
//
// The result is always returned in ascending weight order (Prim's discovery
// order is stably re-sorted) so that it can be handed to cluster.Partition
// regardless of the method.
func Compute(g *core.Graph, opts MSTOptions) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	switch opts.Method {
	case MethodKruskal, "":
		return Kruskal(g.Edges(), g.NodeCount())
	case MethodPrim:
		mst, err := Prim(g, opts.Root)
		if err != nil {
			return nil, err
		}
		SortByWeight(mst)

		return mst, nil
	default:
		return nil, fmt.Errorf("Compute(%q): %w", opts.Method, ErrUnknownMethod)
	}
}
