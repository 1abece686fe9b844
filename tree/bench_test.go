package tree_test

import (
	"testing"

	"github.com/katalvlaran/lvtree/tree"
)

// buildPath returns the path 1-2-...-n.
func buildPath(b *testing.B, n int) *tree.Tree {
	b.Helper()
	tr, err := tree.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for l := 2; l <= n; l++ {
		if err = tr.AddEdge(l-1, l); err != nil {
			b.Fatal(err)
		}
	}

	return tr
}

// BenchmarkAdjacencyMatrix_Cold measures a full rebuild from neighbor lists.
func BenchmarkAdjacencyMatrix_Cold(b *testing.B) {
	const n = 1000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr := buildPath(b, n)
		b.StartTimer()
		_ = tr.AdjacencyMatrix()
	}
}

// BenchmarkValidate measures the BFS tree check on a long path.
func BenchmarkValidate(b *testing.B) {
	tr := buildPath(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Validate()
	}
}
