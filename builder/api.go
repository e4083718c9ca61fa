// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/justagist/dijkstra-graph-manipulation/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before the first
// AddEdge and emit edges in a documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately together with a nil graph.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts u–v with the next generated weight, tagging failures
// with the constructor name.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	if err := g.AddEdge(cfg.id(u), cfg.id(v), cfg.weight()); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, cfg.id(u), cfg.id(v), ErrConstructFailed, err)
	}

	return nil
}

// Shifted wraps c so that its node ids are offset by delta on top of any
// WithIDOffset, letting one BuildGraph call compose disjoint components.
func Shifted(delta int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Shifted: nil constructor: %w", ErrConstructFailed)
		}
		cfg.offset += delta

		return c(g, cfg)
	}
}
