// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_random.go - Random(n): uniform random labeled trees.
//
// Model:
//   - Draw n-2 labels independently and uniformly from the label set.
//   - Decode the draw. The Prüfer bijection maps the uniform distribution on
//     sequences onto the uniform distribution on labeled trees.
//
// Determinism: draws happen in code order from cfg.rng, so a fixed seed fixes the tree.
// Complexity: O(n) draws + O(n²) decode.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/prufer"
	"github.com/katalvlaran/lvtree/tree"
)

const (
	methodRandom   = "Random"
	minRandomNodes = 1
	// a single node has no Prüfer sequence: the empty code already means the edge 1-2
	minSequenceNodes = 2
)

// Random returns a Constructor for a uniformly random tree on n nodes.
// Requires WithSeed or WithRand.
func Random(n int) Constructor {
	return func(cfg builderConfig) (*tree.Tree, error) {
		if n < minRandomNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		if n == 1 {
			return assemble(methodRandom, cfg, 1, nil)
		}

		labels := cfg.labels(n)
		t, err := prufer.Decode(drawCode(cfg, labels), prufer.WithAlphabet(labels...))
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodRandom, ErrConstructFailed, err)
		}

		return t, nil
	}
}

// RandomSequence draws the code Random(n) would decode, for callers that want
// to show the sequence next to the tree.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices). Random(1) is a lone node, and a lone
//     node has no code; the empty code decodes to the 2-node tree.
//   - Requires WithSeed or WithRand (else ErrNeedRandSource).
//   - For equal n and options, prufer.Decode(RandomSequence(n)) equals Build(Random(n)).
//
// Complexity: O(n) draws.
func RandomSequence(n int, opts ...BuilderOption) (prufer.Sequence, error) {
	// Validate the domain first: n=1 would otherwise yield a code for n=2.
	if n < minSequenceNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minSequenceNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	// Same draw order as Random, so equal seeds give the matching code.
	return drawCode(cfg, cfg.labels(n)), nil
}

// drawCode draws len(labels)-2 labels uniformly, in code order.
func drawCode(cfg builderConfig, labels []int) prufer.Sequence {
	n := len(labels)
	code := make(prufer.Sequence, n-2)
	for i := range code {
		code[i] = labels[cfg.rng.Intn(n)]
	}

	return code
}
