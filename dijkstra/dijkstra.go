// SPDX-License-Identifier: MIT
//
// Package dijkstra answers single-pair shortest-path queries on a
// core.Graph.
//
// Notes on implementation choices:
//
//   - Every query runs inside one core.Graph.Read callback, so the graph is
//     read-locked for exactly the duration of the query and never mutated.
//   - Distances are kept in maps keyed by node id; ids may be sparse.
//   - A relaxation whose sum would reach Infinity is skipped, so every
//     reported distance is strictly below Infinity.
package dijkstra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/justagist/dijkstra-graph-manipulation/core"
)

// Distance returns the shortest distance from source to target using the
// configured strategy (priority queue by default).
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - core.ErrNodeNotFound (wrapped) if source or target is absent.
//   - ErrUnreachable if no path exists; the distance is then Infinity.
//
// Complexity: O((V + E) log V) for the priority-queue strategy.
func Distance(g *core.Graph, source, target int, opts ...Option) (int64, error) {
	res, err := ShortestPath(g, source, target, opts...)

	return res.Distance, err
}

// PriorityQueue returns the shortest distance computed with Dijkstra's
// algorithm over an indexed min-heap with decrease-key.
func PriorityQueue(g *core.Graph, source, target int) (int64, error) {
	return Distance(g, source, target, WithStrategy(StrategyPriorityQueue))
}

// RelaxationSweep returns the distance computed by the naive baseline that
// processes nodes once each in ascending id order. It is kept for
// comparison and is only correct on graphs where id order is a valid
// settling order from source; use Distance or PriorityQueue otherwise.
func RelaxationSweep(g *core.Graph, source, target int) (int64, error) {
	return Distance(g, source, target, WithStrategy(StrategyRelaxationSweep))
}

// ShortestPath runs a full query and returns the distance, optionally the
// path (WithReturnPath) and the number of settled nodes.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source, then target (core.ErrNodeNotFound).
//  3. the strategy must be known (ErrUnknownStrategy).
//
// An unreachable target yields Result{Distance: Infinity} and ErrUnreachable.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{Distance: Infinity}, ErrNilGraph
	}

	var res Result
	err := g.Read(func(v core.View) error {
		if !v.HasNode(source) {
			return fmt.Errorf("%w: source %d", core.ErrNodeNotFound, source)
		}
		if !v.HasNode(target) {
			return fmt.Errorf("%w: target %d", core.ErrNodeNotFound, target)
		}

		var t trace
		switch cfg.Strategy {
		case StrategyPriorityQueue:
			t = newPQRunner(v, source, target).run()
		case StrategyRelaxationSweep:
			t = sweep(v, source)
		default:
			return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(cfg.Strategy))
		}

		res = t.result(source, target, cfg.ReturnPath)

		return nil
	})
	if err != nil {
		return Result{Distance: Infinity}, err
	}

	cfg.Logger.Debug("shortest path query",
		zap.Stringer("strategy", cfg.Strategy),
		zap.Int("source", source),
		zap.Int("target", target),
		zap.Int64("distance", res.Distance),
		zap.Int("settled", res.Settled),
	)

	if res.Distance == Infinity {
		return res, fmt.Errorf("%w: %d → %d", ErrUnreachable, source, target)
	}

	return res, nil
}

// trace is the raw state left behind by either strategy.
type trace struct {
	dist    map[int]int64 // best-known distance; missing means Infinity
	prev    map[int]int   // predecessor on a shortest path
	settled int
}

// result extracts the answer for target, rebuilding the path if asked.
func (t trace) result(source, target int, withPath bool) Result {
	d, ok := t.dist[target]
	if !ok {
		d = Infinity
	}
	res := Result{Distance: d, Settled: t.settled}
	if !withPath || d == Infinity {
		return res
	}

	path := []int{target}
	for cur := target; cur != source; {
		p, ok := t.prev[cur]
		if !ok || len(path) > len(t.prev) {
			return res
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res
}

// relaxed returns d+w and true, or false if the sum would reach Infinity.
func relaxed(d, w int64) (int64, bool) {
	if d == Infinity || w >= Infinity-d {
		return Infinity, false
	}

	return d + w, true
}
