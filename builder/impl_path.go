// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_path.go - Path(n) and Star(n).
//
// Contract:
//   - n ≥ 2 for both (else ErrTooFewVertices).
//   - Labels come from cfg.labelFn in ascending index order.
//   - Path emits i - i+1 for i ascending; Star emits hub - i for i ascending.
//
// Complexity: O(n) time and space for both.
//
// Determinism:
//   - Neither shape touches cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

const (
	methodPath   = "Path"
	methodStar   = "Star"
	minPathNodes = 2
	minStarNodes = 2
)

// Path returns a Constructor for the path index 0 - 1 - ... - n-1.
// With default labels its Prüfer code is 2, 3, ..., n-1.
func Path(n int) Constructor {
	// The returned closure captures n and receives cfg from Build.
	return func(cfg builderConfig) (*tree.Tree, error) {
		// Validate the parameter domain early to avoid partial work.
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		pairs := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			pairs = append(pairs, [2]int{i, i + 1})
		}

		return assemble(methodPath, cfg, n, pairs)
	}
}

// Star returns a Constructor for a star whose hub is index 0.
// With default labels its Prüfer code is n-2 copies of 1.
func Star(n int) Constructor {
	return func(cfg builderConfig) (*tree.Tree, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		pairs := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			pairs = append(pairs, [2]int{0, i})
		}

		return assemble(methodStar, cfg, n, pairs)
	}
}
