package builder

import (
	"fmt"
	"math"
)

// validatePoints checks that there is at least one point, that every point
// has the dimension of the first (and at least one feature), and that all
// features are finite. It returns the common dimension.
//
// Complexity: O(n·d) time, O(1) space.
func validatePoints(method string, points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("%s: n=0 < min=1: %w", method, ErrTooFewVertices)
	}
	dim := len(points[0])
	if dim == 0 {
		return 0, fmt.Errorf("%s: point 0 has no features: %w", method, ErrDimensionMismatch)
	}
	for i, p := range points {
		if len(p) != dim {
			return 0, fmt.Errorf("%s: point %d has %d features, want %d: %w", method, i, len(p), dim, ErrDimensionMismatch)
		}
		for j, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("%s: point %d feature %d = %g: %w", method, i, j, v, ErrBadFeature)
			}
		}
	}

	return dim, nil
}
