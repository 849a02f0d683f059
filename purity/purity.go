package purity

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no clusters or no nodes in them.
	ErrEmptyInput = errors.New("purity: empty input")

	// ErrUnknownNode is returned when a cluster holds an id with no label.
	ErrUnknownNode = errors.New("purity: node has no label")
)

// ClusterScore describes the majority label of one cluster.
type ClusterScore[L comparable] struct {
	// Size is the number of nodes in the cluster.
	Size int `json:"size"`

	// Majority is the count of the most frequent label.
	Majority int `json:"majority"`

	// Label is the most frequent label. On a tie, the label that reached
	// the majority count first while scanning the cluster wins.
	Label L `json:"label"`
}

// Score returns the purity of clusters against labels, where labels[i] is
// the ground truth of node i.
//
// Errors:
//   - ErrEmptyInput if clusters is empty or all clusters are empty.
//   - ErrUnknownNode if a cluster holds an id outside 0..len(labels)-1.
//
// Complexity: O(N) for N clustered nodes.
func Score[C ~[]int, L comparable](clusters []C, labels []L) (float64, error) {
	scores, err := Breakdown(clusters, labels)
	if err != nil {
		return 0, fmt.Errorf("Score: %w", err)
	}

	var total, majority int
	for _, s := range scores {
		total += s.Size
		majority += s.Majority
	}

	return float64(majority) / float64(total), nil
}

// Breakdown returns the majority label of every cluster, in cluster order.
// Empty clusters get a zero ClusterScore. Errors as for Score.
func Breakdown[C ~[]int, L comparable](clusters []C, labels []L) ([]ClusterScore[L], error) {
	if len(clusters) == 0 {
		return nil, fmt.Errorf("Breakdown: no clusters: %w", ErrEmptyInput)
	}

	out := make([]ClusterScore[L], len(clusters))
	total := 0
	freq := make(map[L]int)
	for ci, c := range clusters {
		clear(freq)
		s := ClusterScore[L]{Size: len(c)}
		for _, id := range c {
			if id < 0 || id >= len(labels) {
				return nil, fmt.Errorf("Breakdown: cluster %d node %d of %d labels: %w", ci, id, len(labels), ErrUnknownNode)
			}
			l := labels[id]
			freq[l]++
			if freq[l] > s.Majority {
				s.Majority, s.Label = freq[l], l
			}
		}
		out[ci] = s
		total += s.Size
	}
	if total == 0 {
		return nil, fmt.Errorf("Breakdown: clusters hold no nodes: %w", ErrEmptyInput)
	}

	return out, nil
}
