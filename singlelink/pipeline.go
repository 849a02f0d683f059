package singlelink

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/slink/builder"
	"github.com/katalvlaran/slink/cluster"
	"github.com/katalvlaran/slink/core"
	"github.com/katalvlaran/slink/prim_kruskal"
	"github.com/katalvlaran/slink/purity"
	"github.com/katalvlaran/slink/segment"
)

// ErrNoClusterCounts is returned by Sweep when no k is given.
var ErrNoClusterCounts = errors.New("singlelink: no cluster counts to evaluate")

// Result is the outcome of clustering for one k.
type Result struct {
	RunID string `json:"run_id"`
	K     int    `json:"k"`

	Nodes     int     `json:"nodes"`
	Edges     int     `json:"edges"`
	MSTSize   int     `json:"mst_size"`
	MSTWeight float64 `json:"mst_weight"`

	// Threshold is the lightest removed MST edge: clusters are at least this
	// far apart. Zero when k == 1.
	Threshold float64 `json:"threshold"`

	Clusters  []cluster.Cluster                     `json:"-"`
	Purity    float64                               `json:"purity"`
	Breakdown []purity.ClusterScore[segment.Class] `json:"clusters"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

// Pipeline holds the MST of one dataset and clusters it for any k.
// It is safe for concurrent use once New returns.
type Pipeline struct {
	opts   Options
	runID  string
	log    *slog.Logger
	labels []segment.Class
	edges  int
	mst    []core.Edge
}

// New builds the complete graph over records and its minimum spanning tree.
//
// Errors:
//   - builder.ErrTooFewVertices, builder.ErrDimensionMismatch or
//     builder.ErrBadFeature for unusable records.
//   - prim_kruskal.ErrUnknownMethod for an unknown Options.Method.
//   - ctx.Err() if ctx is already done.
func New(ctx context.Context, records []segment.Record, opts ...Option) (*Pipeline, error) {
	o := DefaultOptions(opts...)
	p := &Pipeline{
		opts:   o,
		runID:  uuid.New().String(),
		labels: segment.Labels(records),
	}
	p.log = o.Logger.With("run_id", p.runID)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	points := segment.Points(records)
	var err error
	switch o.Method {
	case MethodPrimDense:
		err = p.buildDense(points)
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim, "":
		err = p.buildGraph(points)
	default:
		err = fmt.Errorf("%q: %w", o.Method, prim_kruskal.ErrUnknownMethod)
	}
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err = cluster.ValidateTree(p.mst, len(records)); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	p.log.Info("mst built",
		"nodes", len(records),
		"edges", p.edges,
		"method", o.Method,
		"metric", o.Metric.String(),
		"standardize", o.Standardize,
		"mst_weight", core.TotalWeight(p.mst),
		"elapsed", time.Since(start),
	)

	return p, nil
}

// buildGraph takes the edge-list route: Kruskal or heap Prim.
func (p *Pipeline) buildGraph(points [][]float64) error {
	g, err := builder.Complete(points, p.opts.builderOptions()...)
	if err != nil {
		return err
	}
	p.edges = g.EdgeCount()
	p.log.Debug("graph built", "nodes", g.NodeCount(), "edges", p.edges)

	mst, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(p.opts.Method)))
	if err != nil {
		return err
	}
	p.mst = mst

	return nil
}

// buildDense takes the distance-matrix route.
func (p *Pipeline) buildDense(points [][]float64) error {
	m, err := builder.DistanceMatrix(points, p.opts.builderOptions()...)
	if err != nil {
		return err
	}
	p.edges = builder.PairCount(len(points))
	p.log.Debug("distance matrix built", "nodes", len(points))

	mst, err := prim_kruskal.PrimDense(m)
	if err != nil {
		return err
	}
	prim_kruskal.SortByWeight(mst)
	p.mst = mst

	return nil
}

// RunID identifies the pipeline in log records and results.
func (p *Pipeline) RunID() string { return p.runID }

// NodeCount returns the number of records.
func (p *Pipeline) NodeCount() int { return len(p.labels) }

// EdgeCount returns the number of edges of the complete graph.
func (p *Pipeline) EdgeCount() int { return p.edges }

// MST returns a copy of the spanning tree in ascending weight order.
func (p *Pipeline) MST() []core.Edge { return slices.Clone(p.mst) }

// Run clusters the records into k groups and scores them.
//
// Errors:
//   - cluster.ErrInvalidClusterCount if k is outside 1..NodeCount().
//   - ctx.Err() on cancellation.
func (p *Pipeline) Run(ctx context.Context, k int) (*Result, error) {
	start := time.Now()
	n := p.NodeCount()

	forest, err := cluster.Partition(p.mst, n, k)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	groups, err := cluster.ExtractContext(ctx, n, forest, k)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	breakdown, err := purity.Breakdown(groups, p.labels)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	score, err := purity.Score(groups, p.labels)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	var threshold float64
	if cut := p.mst[len(forest):]; len(cut) > 0 {
		threshold = cut[0].Weight
	}

	res := &Result{
		RunID:     p.runID,
		K:         k,
		Nodes:     n,
		Edges:     p.edges,
		MSTSize:   len(p.mst),
		MSTWeight: core.TotalWeight(p.mst),
		Threshold: threshold,
		Clusters:  groups,
		Purity:    score,
		Breakdown: breakdown,
		Elapsed:   time.Since(start),
	}
	p.log.Info("clusters extracted", "k", k, "clusters", len(groups), "purity", score, "threshold", threshold)

	return res, nil
}

// Sweep runs every k in ks, at most Options.Workers at a time, and returns
// the results in the order of ks. The first failure cancels the remaining
// runs and is returned.
func (p *Pipeline) Sweep(ctx context.Context, ks []int) ([]*Result, error) {
	if len(ks) == 0 {
		return nil, ErrNoClusterCounts
	}

	results := make([]*Result, len(ks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i, k := range ks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := p.Run(gctx, k)
			if err != nil {
				return fmt.Errorf("k=%d: %w", k, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.log.Error("sweep failed", "err", err)
		return nil, fmt.Errorf("Sweep: %w", err)
	}
	p.log.Info("sweep done", "runs", len(ks))

	return results, nil
}

// Run builds a Pipeline over records and clusters it for one k.
func Run(ctx context.Context, records []segment.Record, k int, opts ...Option) (*Result, error) {
	p, err := New(ctx, records, opts...)
	if err != nil {
		return nil, err
	}

	return p.Run(ctx, k)
}

// Sweep builds a Pipeline over records and clusters it for every k in ks.
func Sweep(ctx context.Context, records []segment.Record, ks []int, opts ...Option) ([]*Result, error) {
	p, err := New(ctx, records, opts...)
	if err != nil {
		return nil, err
	}

	return p.Sweep(ctx, ks)
}
