// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations add context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the tree could not be assembled: a nil
// constructor, or a label scheme that yields non-positive or repeated labels.
var ErrConstructFailed = errors.New("builder: construction failed")
