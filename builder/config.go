// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — functional options resolved into an immutable builderConfig.

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig is the resolved configuration passed to every Constructor.
type builderConfig struct {
	rng      *rand.Rand // nil unless WithSeed/WithRand
	weightFn WeightFn   // never nil
	offset   int        // added to every generated node index
}

// BuilderOption mutates a builderConfig during resolution.
type BuilderOption func(*builderConfig)

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs the given RNG. Panics on nil.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = rng }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithIDOffset shifts every generated node id by offset. Panics on offset < 0.
func WithIDOffset(offset int) BuilderOption {
	if offset < 0 {
		panic(fmt.Sprintf("builder: WithIDOffset(%d) must be ≥ 0", offset))
	}

	return func(c *builderConfig) { c.offset = offset }
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a node id.
func (c builderConfig) id(i int) int { return c.offset + i }

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
