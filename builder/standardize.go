package builder

import "gonum.org/v1/gonum/stat"

const methodStandardize = "Standardize"

// Standardize returns a copy of points in which every feature column has
// mean 0 and (sample) standard deviation 1. Constant columns, and every
// column of a single point, become all zeros. The input is not modified.
//
// Errors: as for Complete.
// Complexity: O(n·d) time and space.
func Standardize(points [][]float64) ([][]float64, error) {
	dim, err := validatePoints(methodStandardize, points)
	if err != nil {
		return nil, err
	}

	return standardize(points, dim), nil
}

// standardize assumes points were validated.
func standardize(points [][]float64, dim int) [][]float64 {
	n := len(points)
	flat := make([]float64, n*dim)
	out := make([][]float64, n)
	for i, p := range points {
		out[i] = flat[i*dim : (i+1)*dim : (i+1)*dim]
		copy(out[i], p)
	}

	col := make([]float64, n)
	for j := 0; j < dim; j++ {
		for i := range out {
			col[i] = out[i][j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		for i := range out {
			if std > 0 {
				out[i][j] = (out[i][j] - mean) / std
			} else {
				out[i][j] = 0
			}
		}
	}

	return out
}

// prepare validates points and applies the standardize option.
func (c builderConfig) prepare(method string, points [][]float64) ([][]float64, error) {
	dim, err := validatePoints(method, points)
	if err != nil {
		return nil, err
	}
	if c.standardize {
		return standardize(points, dim), nil
	}

	return points, nil
}
