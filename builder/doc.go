// Package builder generates deterministic graph topologies on core.Graph
// for tests, examples and benchmarks.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//	    builder.Grid(4, 5),
//	)
//
// Constructors: Path, Cycle, Star, Complete, Grid, RandomSparse. Node ids
// are 0..n-1 (row-major for Grid) shifted by WithIDOffset; wrap a single
// constructor in Shifted to place it on its own id range, which lets one
// BuildGraph call compose disjoint components.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed (wrapping the core error when AddEdge rejects an edge).
package builder
