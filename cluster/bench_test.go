package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/slink/cluster"
	"github.com/katalvlaran/slink/core"
)

// randomTree returns a random spanning tree over n nodes in ascending weight order.
func randomTree(n int) []core.Edge {
	rng := rand.New(rand.NewSource(42))
	out := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, core.Edge{A: rng.Intn(i), B: i, Weight: float64(i)})
	}

	return out
}

// BenchmarkPartitionExtract measures one k on a 2310-node tree, the size of
// the image segmentation dataset.
func BenchmarkPartitionExtract(b *testing.B) {
	const n, k = 2310, 7
	mst := randomTree(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		forest, err := cluster.Partition(mst, n, k)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := cluster.Extract(n, forest, k); err != nil {
			b.Fatal(err)
		}
	}
}
