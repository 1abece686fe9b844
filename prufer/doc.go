// Package prufer implements the Prüfer bijection between labeled trees on n
// nodes and integer sequences of length n-2 over the label alphabet.
//
// What
//
//   - Decode(code) builds a tree.Tree with len(code)+2 nodes.
//   - Encode(t) strips leaves from a tree.Tree and returns its Sequence.
//   - Both directions repeatedly select the minimum eligible label; that
//     shared tie-break is what makes them mutual inverses.
//
// Decode
//
//	n := len(code) + 2
//	for i := range code:
//	    pick := min { v ∈ remaining : v does not occur in code[i:] }
//	    connect(code[i], pick); remaining -= pick
//	connect the two labels left in remaining
//
// Encode
//
//	repeat n-2 times:
//	    leaf := min { v not eliminated : degree(v) == 1 }
//	    nbr  := the single live neighbor of leaf
//	    emit nbr; eliminate leaf; degree(nbr)--
//
// Encode works on a private copy of t.AdjacencyMatrix() and an explicit
// live-degree slice; the caller's Tree is never mutated and the neighbor is
// always read from the live matrix row, never from the original neighbor list.
//
// Methods
//
//   - MethodScan (default): linear scan for the minimum at every step, O(n²).
//   - MethodHeap: container/heap min-heap of eligible labels, O(n log n).
//
// Both methods produce identical output on every valid input.
//
// Alphabet
//
//	The minimum rule compares label values. Encode uses the tree's own
//	ascending label set; Decode uses 1..n unless WithAlphabet supplies a
//	custom injective set of exactly len(code)+2 labels.
//
// Usage
//
//	t, err := prufer.Decode([]int{5, 2, 4, 1})
//	// t: 1-4 1-6 2-4 2-5 3-5
//	seq, err := prufer.Encode(t, prufer.WithMethod(prufer.MethodHeap))
//	// seq: 5 2 4 1
//
// Errors
//
//   - ErrInvalidInput        nil or too-small tree, code entry outside the
//     alphabet, bad alphabet, unknown method, failed WithValidation check.
//   - ErrInvariantViolation  no eligible label at some step: the input was
//     not a tree, or the code did not come from one. Never surfaces for
//     well-formed input.
//
// Complexity (n = nodes)
//
//   - Scan:   O(n²) time, O(n²) memory on Encode (dense matrix), O(n) on Decode.
//   - Heap:   O(n log n) time, O(n) memory.
//
// Neither Encode nor Decode keeps state between calls, so concurrent calls
// on independent inputs, or on the same read-only Tree, are safe.
package prufer
