package singlelink

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/slink/builder"
	"github.com/katalvlaran/slink/prim_kruskal"
)

// MethodPrimDense selects prim_kruskal.PrimDense over a builder.DistanceMatrix
// instead of an edge list. It needs n² floats rather than n·(n−1)/2 edges
// and skips the edge sort.
const MethodPrimDense = "prim-dense"

// Options configures a Pipeline.
type Options struct {
	// Method is prim_kruskal.MethodKruskal (default), prim_kruskal.MethodPrim
	// or MethodPrimDense.
	Method string

	// Metric is the edge weight; builder.Euclidean by default.
	Metric builder.Metric

	// Standardize z-scores the features before distances are taken.
	Standardize bool

	// Workers bounds the k values a Sweep evaluates at once.
	// Defaults to runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives progress records. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the defaults with opts applied in order.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		Method:  prim_kruskal.MethodKruskal,
		Metric:  builder.Euclidean,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMethod selects the MST algorithm. An unknown name is reported by New
// as prim_kruskal.ErrUnknownMethod.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithMetric selects the distance used as edge weight.
func WithMetric(m builder.Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithStandardize toggles z-scoring of features.
func WithStandardize(on bool) Option {
	return func(o *Options) { o.Standardize = on }
}

// WithWorkers bounds Sweep's concurrency. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("singlelink: WithWorkers(%d): need at least one worker", n))
	}
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("singlelink: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// builderOptions translates o into builder options.
func (o Options) builderOptions() []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithMetric(o.Metric)}
	if o.Standardize {
		opts = append(opts, builder.WithStandardize())
	}

	return opts
}
