package purity_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slink/purity"
)

func TestScore_Scenario(t *testing.T) {
	labels := []string{"A", "A", "B", "B"}
	got, err := purity.Score([][]int{{0, 1, 2}, {3}}, labels)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got, 1e-12)
}

func TestScore_Singletons(t *testing.T) {
	labels := []int{3, 1, 4, 1, 5, 9, 2, 6}
	clusters := make([][]int, len(labels))
	for i := range clusters {
		clusters[i] = []int{i}
	}
	got, err := purity.Score(clusters, labels)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestScore_SingleCluster(t *testing.T) {
	labels := []string{"sky", "grass", "sky", "path", "sky", "grass"}
	got, err := purity.Score([][]int{{0, 1, 2, 3, 4, 5}}, labels)
	require.NoError(t, err)
	assert.InDelta(t, 3.0/6.0, got, 1e-12)
}

func TestScore_Homogeneous(t *testing.T) {
	labels := []string{"x", "y", "x", "y", "z"}
	got, err := purity.Score([][]int{{0, 2}, {1, 3}, {4}}, labels)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

// TestScore_PermutationInvariant shuffles members inside each cluster and
// expects the same score.
func TestScore_PermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	labels := make([]int, 60)
	for i := range labels {
		labels[i] = rng.Intn(4)
	}
	clusters := [][]int{make([]int, 0), make([]int, 0), make([]int, 0)}
	for i := range labels {
		c := rng.Intn(3)
		clusters[c] = append(clusters[c], i)
	}
	want, err := purity.Score(clusters, labels)
	require.NoError(t, err)

	for round := 0; round < 10; round++ {
		for _, c := range clusters {
			rng.Shuffle(len(c), func(i, j int) { c[i], c[j] = c[j], c[i] })
		}
		got, err := purity.Score(clusters, labels)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestScore_Errors(t *testing.T) {
	labels := []string{"A", "B"}

	_, err := purity.Score([][]int{}, labels)
	assert.ErrorIs(t, err, purity.ErrEmptyInput)

	_, err = purity.Score([][]int{{}, {}}, labels)
	assert.ErrorIs(t, err, purity.ErrEmptyInput)

	_, err = purity.Score([][]int{{0, 2}}, labels)
	assert.ErrorIs(t, err, purity.ErrUnknownNode)

	_, err = purity.Score([][]int{{-1}}, labels)
	assert.ErrorIs(t, err, purity.ErrUnknownNode)
}

func TestBreakdown(t *testing.T) {
	labels := []string{"B", "A", "A", "B", "C"}
	got, err := purity.Breakdown([][]int{{0, 1, 2, 3}, {}, {4}}, labels)
	require.NoError(t, err)
	assert.Equal(t, []purity.ClusterScore[string]{
		{Size: 4, Majority: 2, Label: "A"},
		{},
		{Size: 1, Majority: 1, Label: "C"},
	}, got)
}

// namedCluster checks that any ~[]int cluster type is accepted.
type namedCluster []int

func TestScore_NamedClusterType(t *testing.T) {
	got, err := purity.Score([]namedCluster{{0, 1}, {2}}, []bool{true, false, false})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, got, 1e-12)
}
