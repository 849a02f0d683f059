// Package builder turns feature vectors into the weighted graphs and distance
// matrices the MST algorithms consume.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Complete(points, opts...):       K_n over the points, one edge per
//     unordered pair {i,j}, i<j, emitted in lexicographic (i,j) order, so
//     exactly n·(n−1)/2 edges.
//     – DistanceMatrix(points, opts...): the same distances as a dense gonum
//     *mat.SymDense with a zero diagonal, for prim_kruskal.PrimDense.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithMetric(Euclidean|Manhattan|Cosine), WithStandardize().
//   - Metrics:
//     – Euclidean: √Σ(aᵢ−bᵢ)², gonum floats.Distance(a, b, 2). Default.
//     – Manhattan: Σ|aᵢ−bᵢ|, gonum floats.Distance(a, b, 1).
//     – Cosine:    1 − a·b/(‖a‖‖b‖), via github.com/viterin/vek.
//   - Standardize(points): per-feature z-scores (gonum stat.MeanStdDev).
//
// Guarantees:
//
//   - Input points are never mutated; standardization works on a copy.
//   - Deterministic output for identical input and options.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors are sentinels wrapped with method context:
//     ErrTooFewVertices, ErrDimensionMismatch, ErrBadFeature.
//
// Complexity: Complete and DistanceMatrix are O(n²·d) time; Complete holds
// n·(n−1)/2 edges, DistanceMatrix n² floats.
package builder
