// SPDX-License-Identifier: MIT

// Package matrix provides the dense 0/1 adjacency matrix used by lvtree to
// materialize the edge relation of a labeled tree.
//
// What
//
//   - Adjacency is an n×n row-major buffer of int8 cells.
//   - Row/column i corresponds to the i-th label of the owning tree in
//     ascending label order (for the default labels 1..n: label i+1).
//   - Writes are symmetric: Set(i, j, v) stores v at (i,j) and (j,i).
//   - The diagonal is always zero (no self-loops).
//
// Why
//
//   - Prüfer encoding reads degrees as row sums and strips leaves by
//     decrementing symmetric cells; a dense matrix makes both O(n) per step
//     without touching the tree's own neighbor lists.
//
// Invariants (checked by Validate and FromRows)
//
//   - square shape, n ≥ 1
//   - entries in {0, 1}
//   - zero diagonal
//   - symmetry: At(i,j) == At(j,i)
//
// Errors
//
//   - ErrBadShape         requested size < 1.
//   - ErrNonSquare        FromRows input is ragged or not square.
//   - ErrOutOfRange       row/column index outside [0, n).
//   - ErrBadEntry         a cell value outside {0, 1}.
//   - ErrNonZeroDiagonal  a non-zero diagonal cell.
//   - ErrAsymmetry        At(i,j) != At(j,i).
//
// Complexity
//
//   - NewAdjacency/Clone/Rows/Equal/Validate: O(n²).
//   - At/Set/Connect/Decrement: O(1).
//   - RowSum: O(n).
package matrix
