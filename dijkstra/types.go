// SPDX-License-Identifier: MIT
//
// Package dijkstra defines the sentinel errors, strategies and functional
// options for single-pair shortest-path queries over a core.Graph.
//
// Options:
//
//	– Strategy:   StrategyPriorityQueue (default) or StrategyRelaxationSweep.
//	– ReturnPath: if true, Result.Path holds the node sequence source…target.
//	– Logger:     *zap.Logger receiving one Debug entry per query.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the graph pointer is nil.
//	– ErrUnreachable      if target cannot be reached from source.
//	– ErrUnknownStrategy  if the configured strategy is not recognised.
//	– core.ErrNodeNotFound (wrapped) if source or target is absent.
package dijkstra

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// Infinity is the distance reported for unreachable targets. It is larger
// than any finite sum the algorithms produce: core rejects it as an edge
// weight and relaxations whose sum would reach it are skipped.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the shortest-path entry points.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnreachable indicates there is no path between source and target.
	// The accompanying distance is Infinity.
	ErrUnreachable = errors.New("dijkstra: no path between source and target")

	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects the algorithm used to answer a query.
type Strategy int

const (
	// StrategyPriorityQueue is Dijkstra's algorithm over an indexed min-heap
	// with decrease-key. Correct for every graph with non-negative weights.
	StrategyPriorityQueue Strategy = iota

	// StrategyRelaxationSweep visits every node once in ascending id order and
	// relaxes its edges. It is a naive baseline: the result is only correct
	// when id order happens to be a valid settling order for the source.
	StrategyRelaxationSweep
)

// String returns the strategy name used in logs.
func (s Strategy) String() string {
	switch s {
	case StrategyPriorityQueue:
		return "priority_queue"
	case StrategyRelaxationSweep:
		return "relaxation_sweep"
	default:
		return "unknown"
	}
}

// Options configures a shortest-path query.
type Options struct {
	Strategy   Strategy    // algorithm to run
	ReturnPath bool        // fill Result.Path
	Logger     *zap.Logger // never nil after DefaultOptions
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithStrategy selects the algorithm. An unknown strategy panics with
// ErrUnknownStrategy when the option is applied.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyPriorityQueue && s != StrategyRelaxationSweep {
			panic(ErrUnknownStrategy.Error())
		}
		o.Strategy = s
	}
}

// WithReturnPath asks for the node sequence of one shortest path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithLogger attaches a zap logger; a nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// DefaultOptions returns the priority-queue strategy, no path and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Strategy:   StrategyPriorityQueue,
		ReturnPath: false,
		Logger:     zap.NewNop(),
	}
}

// Result is the outcome of a single-pair query.
type Result struct {
	// Distance is the shortest distance, or Infinity if unreachable.
	Distance int64

	// Path lists the nodes source…target of one shortest path. It is nil
	// unless WithReturnPath was given and target is reachable.
	Path []int

	// Settled counts the nodes the algorithm finalized (priority queue) or
	// swept (relaxation sweep).
	Settled int
}
