// SPDX-License-Identifier: MIT
// Package: builder
//
// weight_fn.go — edge weight generators. All generators return values ≥ 0.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight emitted by DefaultWeightFn.
const DefaultEdgeWeight int64 = 1

// WeightFn produces one edge weight. rng may be nil when no seed was set.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns value for every edge. Panics on value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn draws uniformly from [min, max]. Without an rng it falls
// back to min. Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		if max-min == math.MaxInt64 {
			return rng.Int63()
		}

		return min + rng.Int63n(max-min+1)
	}
}
