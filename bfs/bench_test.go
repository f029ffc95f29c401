package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/georoute/bfs"
	"github.com/katalvlaran/georoute/core"
)

// BenchmarkComponents_Grid measures component discovery on a 100×100 grid.
func BenchmarkComponents_Grid(b *testing.B) {
	const side = 100
	g := core.NewGraph()
	id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			_ = g.AddVertex(id(r, c))
		}
	}
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				_, _ = g.AddEdge(id(r, c), id(r, c+1), 1)
			}
			if r+1 < side {
				_, _ = g.AddEdge(id(r, c), id(r+1, c), 1)
			}
		}
	}
	g.Freeze()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Components(g); err != nil {
			b.Fatal(err)
		}
	}
}
