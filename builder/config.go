// SPDX-License-Identifier: MIT
// Package: slink/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • metric      = Euclidean
//   • distFn      = floats.Distance(a, b, 2)
//   • standardize = false

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// metric names distFn; -1 when a custom DistanceFn is installed.
	metric Metric
	// distFn computes one edge weight.
	distFn DistanceFn
	// standardize z-scores features before distances are taken.
	standardize bool
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		metric: Euclidean,
		distFn: euclidean,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
