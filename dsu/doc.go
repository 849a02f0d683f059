// Package dsu provides a fixed-size disjoint-set (union-find) structure over
// the integer elements 0..n-1, tuned for Kruskal's algorithm.
//
// Unlike the textbook parent-pointer forest, DisjointSet stores the root of
// every element directly and keeps an explicit member list per root:
//
//   - Find is a single slice lookup, O(1), with no path compression.
//   - Union absorbs the smaller component into the larger one and re-roots
//     every absorbed member, costing O(size of the absorbed component).
//     Each element changes root at most log2(n) times, so a full Kruskal run
//     over m edges costs O(m + n log n).
//   - Size and Members of a component are available in O(1) and O(size).
//
// Tie policy
//
//	When both components have the same size, b's root is absorbed into a's
//	root. Kruskal calls Union(e.A, e.B) in ascending weight order, so the
//	resulting roots are fully determined by the edge order.
//
// Errors
//
//	ErrInvalidSize - New(n) with n < 0.
//	ErrOutOfRange  - an element outside 0..n-1.
//
// A DisjointSet is not safe for concurrent mutation; each clustering run
// owns its own instance.
package dsu
