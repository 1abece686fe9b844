// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// api.go - the Build entry point and shared assembly helper.
//
// Contract:
//   - One orchestrator: Build(ctor, opts...). Resolves cfg, runs ctor once.
//   - Factories live in impl_*.go and return Constructor closures.
//   - Determinism: same inputs, options and seed produce identical trees.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// Constructor produces a tree from the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit index pairs in a stable, documented order.
//   - Take labels only from cfg.labelFn, never hard-code them.
//
// Complexity (this type): O(1) to pass; the cost lives in the closure body.
type Constructor func(cfg builderConfig) (*tree.Tree, error)

// Build resolves the builder configuration from opts and runs ctor once.
// Any constructor error is wrapped with the context "Build: %w" and returned
// immediately; no partial tree is ever returned.
//
// Rationale:
//   - A single entry point keeps option resolution and error wrapping uniform.
//   - Options resolve before the constructor runs, so a constructor sees one
//     immutable config.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Running ctor: the cost documented on each factory.
//
// Concurrency:
//   - Build holds no shared state; concurrent calls are safe as long as they
//     do not share a *rand.Rand passed through WithRand.
//
// Errors:
//   - ErrConstructFailed for a nil ctor.
//   - Otherwise the constructor's error, matched with errors.Is against
//     ErrTooFewVertices, ErrNeedRandSource or ErrConstructFailed.
func Build(ctor Constructor, opts ...BuilderOption) (*tree.Tree, error) {
	// Reject a nil constructor up front rather than panicking on the call.
	if ctor == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}

	// Resolve deterministic configuration from functional options.
	cfg := newBuilderConfig(opts...)

	// Run the constructor; it owns validation and assembly.
	t, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return t, nil
}

// assemble creates an n-node tree labeled by cfg and links the index pairs in order.
// A label scheme rejected by tree.New surfaces as ErrConstructFailed.
// Complexity: O(n log n) for the label sort + O(len(pairs)·deg) for AddEdge.
func assemble(method string, cfg builderConfig, n int, pairs [][2]int) (*tree.Tree, error) {
	// Materialize labels once; pairs index into this slice.
	labels := cfg.labels(n)
	t, err := tree.New(n, tree.WithLabels(labels...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	// Link pairs in emission order; a failure here means the shape itself is broken.
	for _, p := range pairs {
		if err = t.AddEdge(labels[p[0]], labels[p[1]]); err != nil {
			return nil, fmt.Errorf("%s: AddEdge: %w: %w", method, ErrConstructFailed, err)
		}
	}

	return t, nil
}
