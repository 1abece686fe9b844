// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: " and callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested size is invalid (n < 1).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadEntry indicates a cell value outside {0, 1}.
	ErrBadEntry = errors.New("matrix: entry must be 0 or 1")

	// ErrNonZeroDiagonal signals a non-zero diagonal cell (self-loop).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals that At(i,j) != At(j,i).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")
)

// cellErrorf attaches a method tag and coordinates to a sentinel.
func cellErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Adjacency.%s(%d,%d): %w", method, i, j, err)
}
