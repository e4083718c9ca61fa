package dijkstra_test

import (
	"testing"

	"github.com/justagist/dijkstra-graph-manipulation/builder"
	"github.com/justagist/dijkstra-graph-manipulation/core"
	"github.com/justagist/dijkstra-graph-manipulation/dijkstra"
)

// benchGrid builds a rows×cols grid with seeded weights in [1, 100].
func benchGrid(b *testing.B, rows, cols int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.Grid(rows, cols),
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkPriorityQueue_1k measures a corner-to-corner query on 1 000 nodes.
func BenchmarkPriorityQueue_1k(b *testing.B) {
	g := benchGrid(b, 25, 40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.PriorityQueue(g, 0, 999)
	}
}

// BenchmarkRelaxationSweep_1k measures the baseline on the same graph.
func BenchmarkRelaxationSweep_1k(b *testing.B) {
	g := benchGrid(b, 25, 40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.RelaxationSweep(g, 0, 999)
	}
}

// BenchmarkPriorityQueue_10k measures scaling on 10 000 nodes.
func BenchmarkPriorityQueue_10k(b *testing.B) {
	g := benchGrid(b, 100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.PriorityQueue(g, 0, 9999)
	}
}
