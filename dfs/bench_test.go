package dfs_test

import (
	"testing"

	"github.com/katalvlaran/slink/dfs"
)

// BenchmarkDFS_Chain measures recursion depth cost on a path of N+1 nodes.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 10000
	pairs := make([][2]int, 0, N)
	for i := 0; i < N; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}
	g := graphOf(b, N+1, pairs...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkIsSpanningTree_Chain measures the tree check on the same path.
func BenchmarkIsSpanningTree_Chain(b *testing.B) {
	const N = 10000
	pairs := make([][2]int, 0, N)
	for i := 0; i < N; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}
	g := graphOf(b, N+1, pairs...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.IsSpanningTree(g)
	}
}
