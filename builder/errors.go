// SPDX-License-Identifier: MIT
// Package: slink/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that no points were supplied.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report empty dataset */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrDimensionMismatch indicates that the points do not all share the
// dimension of the first point, or that a point has no features.
var ErrDimensionMismatch = errors.New("builder: feature dimension mismatch")

// ErrBadFeature indicates a NaN or infinite feature value, which would
// produce an edge weight the MST cannot order.
var ErrBadFeature = errors.New("builder: feature is not a finite number")

// ErrUnknownMetric indicates a metric name ParseMetric does not recognise.
var ErrUnknownMetric = errors.New("builder: unknown metric")
