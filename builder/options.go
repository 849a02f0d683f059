// SPDX-License-Identifier: MIT
// Package: slink/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Later options override earlier ones.

package builder

import "fmt"

// BuilderOption customizes a constructor by mutating a builderConfig
// instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithMetric selects the distance used for edge weights.
// Panics on a Metric outside Euclidean, Manhattan, Cosine.
func WithMetric(m Metric) BuilderOption {
	fn := m.fn()
	if fn == nil {
		panic(fmt.Sprintf("builder: WithMetric(%d): unknown metric", int(m)))
	}
	return func(c *builderConfig) {
		c.metric = m
		c.distFn = fn
	}
}

// WithDistanceFn installs a custom distance function. It must be symmetric,
// non-negative and finite for the graph to be a valid MST input.
// Panics on nil.
func WithDistanceFn(fn DistanceFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.metric = -1
		c.distFn = fn
	}
}

// WithStandardize z-scores every feature across the points before
// distances are computed, so features with large ranges (pixel counts,
// centroids) do not dominate features in [0,1].
func WithStandardize() BuilderOption {
	return func(c *builderConfig) {
		c.standardize = true
	}
}
