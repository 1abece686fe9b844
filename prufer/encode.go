package prufer

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// Encode returns the Prüfer sequence of t: n-2 labels drawn from t's label set.
//
// Precondition: t is a tree (connected, n-1 edges). Encode does not check this
// unless WithValidation is given; a non-tree yields either an unspecified
// sequence or ErrInvariantViolation.
//
// Errors:
//   - ErrInvalidInput: nil tree, n < 2, bad option, or a failed WithValidation check.
//   - ErrInvariantViolation: no leaf, or a leaf without a live neighbor, at some step.
//
// Complexity: O(n²) with MethodScan, O(n log n) with MethodHeap.
//
// Concurrency:
//   - Encode only reads t (under its read lock) and owns all working state,
//     so concurrent Encode calls on one tree are safe.
//
// Determinism:
//   - The smallest live leaf is stripped at every step; both methods emit the
//     same sequence for the same tree.
func Encode(t *tree.Tree, opts ...Option) (Sequence, error) {
	// Resolve options first so a bad option wins over a bad tree.
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidInput)
	}
	n := t.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: a tree on %d node(s) has no Prüfer sequence", ErrInvalidInput, n)
	}
	if o.Validate {
		if err = t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	// Two nodes: nothing to strip, the code is empty.
	if n == 2 {
		return Sequence{}, nil
	}

	var slots []int
	switch o.Method {
	case MethodHeap:
		slots, err = encodeHeap(t, o)
	default:
		slots, err = encodeScan(t, o)
	}
	if err != nil {
		return nil, err
	}

	// Translate arena slots back to labels; slot order is label order.
	labels := t.Labels()
	seq := make(Sequence, len(slots))
	for k, s := range slots {
		seq[k] = labels[s]
	}

	return seq, nil
}

// encodeScan strips leaves on a private copy of the adjacency matrix.
// Degrees live in an explicit slice kept in step with the matrix, and the
// neighbor is read from the live matrix row.
func encodeScan(t *tree.Tree, o Options) ([]int, error) {
	m := t.AdjacencyMatrix() // independent copy; decrements never reach t
	labels := t.Labels()
	n := m.Size()

	degree := make([]int, n)
	for i := range degree {
		degree[i] = m.RowSum(i)
	}
	eliminated := make([]bool, n)
	out := make([]int, 0, n-2)

	for step := 0; step < n-2; step++ {
		// Smallest live leaf: the first slot with live degree 1.
		leaf := -1
		for v := 0; v < n; v++ {
			if !eliminated[v] && degree[v] == 1 {
				leaf = v
				break
			}
		}
		if leaf < 0 {
			return nil, fmt.Errorf("%w: no leaf at step %d", ErrInvariantViolation, step)
		}

		// Its only live neighbor is the single set cell left in its row.
		nbr := -1
		for j := 0; j < n; j++ {
			if v, _ := m.At(leaf, j); v == 1 {
				nbr = j
				break
			}
		}
		if nbr < 0 {
			return nil, fmt.Errorf("%w: leaf slot %d has no live neighbor at step %d", ErrInvariantViolation, leaf, step)
		}

		if err := m.Decrement(leaf, nbr); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		degree[leaf]--
		degree[nbr]--
		eliminated[leaf] = true
		o.Logger.Debug("eliminate", "step", step, "leaf", labels[leaf], "neighbor", labels[nbr])
		out = append(out, nbr)
	}

	return out, nil
}

// encodeHeap keeps every live leaf in a min-heap and reads neighbors from the
// tree's adjacency lists, skipping eliminated slots. Stale heap entries (slots
// whose degree moved away from 1) are dropped lazily on pop.
func encodeHeap(t *tree.Tree, o Options) ([]int, error) {
	labels := t.Labels()
	n := len(labels)

	adj := make([][]int, n)
	degree := make([]int, n)
	for i, l := range labels {
		nbrs, err := t.Neighbors(l)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
		adj[i] = make([]int, len(nbrs))
		for k, nl := range nbrs {
			adj[i][k], _ = t.IndexOf(nl)
		}
		degree[i] = len(nbrs)
	}

	h := make(slotHeap, 0, n)
	for v := 0; v < n; v++ {
		if degree[v] == 1 {
			h = append(h, v)
		}
	}
	heap.Init(&h)
	eliminated := make([]bool, n)
	out := make([]int, 0, n-2)

	for step := 0; step < n-2; step++ {
		leaf := -1
		for h.Len() > 0 {
			v := heap.Pop(&h).(int)
			if !eliminated[v] && degree[v] == 1 {
				leaf = v
				break
			}
		}
		if leaf < 0 {
			return nil, fmt.Errorf("%w: no leaf at step %d", ErrInvariantViolation, step)
		}

		nbr := -1
		for _, j := range adj[leaf] {
			if !eliminated[j] {
				nbr = j
				break
			}
		}
		if nbr < 0 {
			return nil, fmt.Errorf("%w: leaf slot %d has no live neighbor at step %d", ErrInvariantViolation, leaf, step)
		}

		eliminated[leaf] = true
		degree[leaf]--
		degree[nbr]--
		if degree[nbr] == 1 {
			heap.Push(&h, nbr)
		}
		o.Logger.Debug("eliminate", "step", step, "leaf", labels[leaf], "neighbor", labels[nbr])
		out = append(out, nbr)
	}

	return out, nil
}
