// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Option constructors validate and panic on meaningless inputs.
// Constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a build by mutating builderConfig before the constructor runs.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// labelFn maps a 0-based node index to its label.
	labelFn func(int) int
	// rng drives stochastic constructors; nil means none was configured.
	rng *rand.Rand
}

// defaultLabel numbers nodes 1..n.
func defaultLabel(i int) int { return i + 1 }

// newBuilderConfig applies opts over deterministic defaults, later options winning.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{labelFn: defaultLabel}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// labels returns labelFn(0..n-1).
func (c builderConfig) labels(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = c.labelFn(i)
	}

	return out
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
// A *rand.Rand is not safe for concurrent use, so do not share one across
// concurrent Build calls.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLabelScheme overrides the index -> label mapping (default i+1).
// The scheme must yield positive, unique labels; Build reports ErrConstructFailed otherwise.
// Panics on nil.
func WithLabelScheme(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}
