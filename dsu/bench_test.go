package dsu_test

import (
	"testing"

	"github.com/katalvlaran/slink/dsu"
)

// BenchmarkUnion_Chain merges 0..n-1 left to right, the worst case for
// re-rooting when the growing component keeps absorbing singletons.
func BenchmarkUnion_Chain(b *testing.B) {
	const n = 10000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d, _ := dsu.New(n)
		for j := 1; j < n; j++ {
			_, _ = d.Union(0, j)
		}
	}
}

// BenchmarkUnion_Pairwise merges equal-size components level by level.
func BenchmarkUnion_Pairwise(b *testing.B) {
	const n = 1 << 13
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d, _ := dsu.New(n)
		for step := 1; step < n; step <<= 1 {
			for j := 0; j+step < n; j += step << 1 {
				_, _ = d.Union(j, j+step)
			}
		}
	}
}
