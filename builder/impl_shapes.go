// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_shapes.go - Binary(n) and Caterpillar(spine, legs).
//
// Contract:
//   - Binary: n ≥ 1; Caterpillar: spine ≥ 1 and legs ≥ 0 (else ErrTooFewVertices).
//   - A single node (Binary(1), Caterpillar(1, 0)) is a valid edgeless tree.
//   - Pairs are emitted parent-first in ascending child index.
//
// Determinism:
//   - Neither shape touches cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

const (
	methodBinary      = "Binary"
	methodCaterpillar = "Caterpillar"
	minBinaryNodes    = 1
	minSpine          = 1
)

// Binary returns a Constructor for the complete binary tree on n nodes in
// heap layout: index i > 0 hangs off index (i-1)/2.
// Complexity: O(n).
func Binary(n int) Constructor {
	return func(cfg builderConfig) (*tree.Tree, error) {
		if n < minBinaryNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBinary, n, minBinaryNodes, ErrTooFewVertices)
		}
		pairs := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			pairs = append(pairs, [2]int{(i - 1) / 2, i})
		}

		return assemble(methodBinary, cfg, n, pairs)
	}
}

// Caterpillar returns a Constructor for a path of spine nodes (indices
// 0..spine-1) where every spine node carries legs pendant leaves. Leaves are
// numbered after the spine, spine node by spine node.
// The result has spine*(legs+1) nodes.
// Complexity: O(spine*legs).
func Caterpillar(spine, legs int) Constructor {
	return func(cfg builderConfig) (*tree.Tree, error) {
		if spine < minSpine {
			return nil, fmt.Errorf("%s: spine=%d < min=%d: %w", methodCaterpillar, spine, minSpine, ErrTooFewVertices)
		}
		if legs < 0 {
			return nil, fmt.Errorf("%s: legs=%d < 0: %w", methodCaterpillar, legs, ErrTooFewVertices)
		}

		n := spine * (legs + 1)
		pairs := make([][2]int, 0, n-1)

		// Backbone first, then legs grouped by their spine node.
		for s := 0; s+1 < spine; s++ {
			pairs = append(pairs, [2]int{s, s + 1})
		}
		next := spine
		for s := 0; s < spine; s++ {
			for l := 0; l < legs; l++ {
				pairs = append(pairs, [2]int{s, next})
				next++
			}
		}

		return assemble(methodCaterpillar, cfg, n, pairs)
	}
}
