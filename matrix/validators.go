// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the structural checks an adjacency matrix must pass.
//   - Checks are pure, deterministic and allocate nothing.
//   - Each check wraps its sentinel with the validator tag so errors.Is keeps working.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks entries, diagonal and symmetry in that order.
// Complexity: O(n²).
func (m *Adjacency) Validate() error {
	if err := ValidateEntries(m); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m); err != nil {
		return err
	}

	return ValidateSymmetric(m)
}

// ValidateEntries ensures every cell is 0 or 1.
func ValidateEntries(m *Adjacency) error {
	for k, v := range m.data {
		if v != 0 && v != 1 {
			return validatorErrorf(fmt.Sprintf("ValidateEntries(%d,%d)", k/m.n, k%m.n), ErrBadEntry)
		}
	}

	return nil
}

// ValidateZeroDiagonal ensures no vertex is adjacent to itself.
func ValidateZeroDiagonal(m *Adjacency) error {
	for i := 0; i < m.n; i++ {
		if m.data[i*m.n+i] != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal(%d)", i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric scans the upper triangle and compares it with the lower one.
func ValidateSymmetric(m *Adjacency) error {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}
