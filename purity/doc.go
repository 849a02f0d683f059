// Package purity scores a clustering against ground-truth labels.
//
// Purity is the share of nodes whose cluster's majority label equals their
// own: for every cluster take the count of its most frequent label, sum those
// counts, and divide by the total number of clustered nodes.
//
//	purity = Σ_c max_l |{i ∈ c : labels[i] = l}| / Σ_c |c|
//
// The value lies in (0, 1]. It is 1 when every cluster is label-homogeneous
// (in particular when every node is its own cluster) and equals the share of
// the most common label when there is a single cluster.
//
// Score and Breakdown are pure functions, generic over the label type, so
// both segment.Class values and plain strings can be scored.
package purity
