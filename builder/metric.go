package builder

import (
	"fmt"
	"math"
	"strings"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"
)

// Metric selects the distance used as edge weight.
type Metric int

const (
	// Euclidean is the L2 distance. Default.
	Euclidean Metric = iota
	// Manhattan is the L1 distance.
	Manhattan
	// Cosine is one minus the cosine similarity, in [0, 2].
	Cosine
)

var metricNames = [...]string{
	Euclidean: "euclidean",
	Manhattan: "manhattan",
	Cosine:    "cosine",
}

// String returns the lower-case name of m.
func (m Metric) String() string {
	if m >= 0 && int(m) < len(metricNames) {
		return metricNames[m]
	}

	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric maps a case-insensitive name to its Metric. The empty string
// selects Euclidean.
func ParseMetric(name string) (Metric, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Euclidean, nil
	}
	for i, s := range metricNames {
		if s == n {
			return Metric(i), nil
		}
	}

	return 0, fmt.Errorf("ParseMetric(%q): %w", name, ErrUnknownMetric)
}

// DistanceFn returns the distance between two equal-length vectors.
type DistanceFn func(a, b []float64) float64

// fn resolves m to its distance function; unknown metrics yield nil.
func (m Metric) fn() DistanceFn {
	switch m {
	case Euclidean:
		return euclidean
	case Manhattan:
		return manhattan
	case Cosine:
		return cosine
	default:
		return nil
	}
}

func euclidean(a, b []float64) float64 { return floats.Distance(a, b, 2) }

func manhattan(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// cosine is 1 − a·b/(‖a‖‖b‖). A zero vector is at distance 0 from another
// zero vector and 1 from anything else.
func cosine(a, b []float64) float64 {
	na, nb := vek.Norm(a), vek.Norm(b)
	if na == 0 || nb == 0 {
		if na == nb {
			return 0
		}
		return 1
	}
	d := 1 - vek.Dot(a, b)/(na*nb)

	// rounding can push identical directions slightly below zero
	return math.Max(0, math.Min(2, d))
}
