// SPDX-License-Identifier: MIT

// Package matrix - Adjacency storage (row-major) & symmetric accessors.
//
// Purpose:
//   - Keep a flat row-major int8 buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every write symmetric so the zero-diagonal/symmetry invariants hold by construction.

package matrix

import (
	"strings"
)

// method tags used in error wrappers
const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxConnect   = "Connect"
	ctxDecrement = "Decrement"
)

// Adjacency is a square symmetric 0/1 matrix.
//   - n holds the dimension (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Adjacency struct {
	n    int    // dimension (>= 1)
	data []int8 // contiguous row-major storage (len == n*n)
}

// NewAdjacency creates an n×n zero matrix.
// Returns ErrBadShape when n < 1.
// Complexity: O(n²) zero-init.
func NewAdjacency(n int) (*Adjacency, error) {
	if n < 1 {
		return nil, ErrBadShape
	}

	return &Adjacency{n: n, data: make([]int8, n*n)}, nil
}

// FromRows copies rows into a new Adjacency after full validation.
// Errors: ErrBadShape (no rows), ErrNonSquare, ErrBadEntry, ErrNonZeroDiagonal, ErrAsymmetry.
// Complexity: O(n²).
func FromRows(rows [][]int8) (*Adjacency, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}
	m := &Adjacency{n: n, data: make([]int8, n*n)}
	for i, row := range rows {
		// every row must have exactly n cells
		if len(row) != n {
			return nil, validatorErrorf("FromRows", ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Size returns the dimension n.
func (m *Adjacency) Size() int { return m.n }

// inRange reports whether (i,j) addresses a cell.
func (m *Adjacency) inRange(i, j int) bool {
	return i >= 0 && i < m.n && j >= 0 && j < m.n
}

// At returns the cell (i,j).
func (m *Adjacency) At(i, j int) (int8, error) {
	if !m.inRange(i, j) {
		return 0, cellErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Set stores v at (i,j) and (j,i).
// v must be 0 or 1; a non-zero diagonal write is rejected.
func (m *Adjacency) Set(i, j int, v int8) error {
	if !m.inRange(i, j) {
		return cellErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if v != 0 && v != 1 {
		return cellErrorf(ctxSet, i, j, ErrBadEntry)
	}
	if i == j && v != 0 {
		return cellErrorf(ctxSet, i, j, ErrNonZeroDiagonal)
	}
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v

	return nil
}

// Connect marks i and j adjacent. Equivalent to Set(i, j, 1).
func (m *Adjacency) Connect(i, j int) error {
	if !m.inRange(i, j) {
		return cellErrorf(ctxConnect, i, j, ErrOutOfRange)
	}
	if i == j {
		return cellErrorf(ctxConnect, i, j, ErrNonZeroDiagonal)
	}
	m.data[i*m.n+j] = 1
	m.data[j*m.n+i] = 1

	return nil
}

// Decrement removes one unit of weight from (i,j) and (j,i).
// Decrementing an empty cell is rejected with ErrBadEntry, so the buffer never goes negative.
func (m *Adjacency) Decrement(i, j int) error {
	if !m.inRange(i, j) {
		return cellErrorf(ctxDecrement, i, j, ErrOutOfRange)
	}
	if m.data[i*m.n+j] == 0 {
		return cellErrorf(ctxDecrement, i, j, ErrBadEntry)
	}
	m.data[i*m.n+j]--
	m.data[j*m.n+i]--

	return nil
}

// RowSum returns the number of set cells in row i (the degree of vertex i).
// An out-of-range row yields 0.
// Complexity: O(n).
func (m *Adjacency) RowSum(i int) int {
	if i < 0 || i >= m.n {
		return 0
	}
	sum := 0
	for _, v := range m.data[i*m.n : (i+1)*m.n] {
		sum += int(v)
	}

	return sum
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Adjacency) Row(i int) []int8 {
	if i < 0 || i >= m.n {
		return nil
	}
	out := make([]int8, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}

// Rows returns a deep copy of the matrix as a slice of rows.
func (m *Adjacency) Rows() [][]int8 {
	out := make([][]int8, m.n)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Clone returns an independent deep copy.
func (m *Adjacency) Clone() *Adjacency {
	data := make([]int8, len(m.data))
	copy(data, m.data)

	return &Adjacency{n: m.n, data: data}
}

// Equal reports whether m and other have the same size and cells.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func (m *Adjacency) Equal(other *Adjacency) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// Ones returns the number of set cells above the diagonal, i.e. the edge count.
func (m *Adjacency) Ones() int {
	count := 0
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			count += int(m.data[i*m.n+j])
		}
	}

	return count
}

// String renders rows of space-separated cells, one row per line.
//
//	0 1 0
//	1 0 1
//	0 1 0
func (m *Adjacency) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + byte(m.data[i*m.n+j]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
