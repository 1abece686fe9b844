package prufer

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// Decode builds the tree whose Prüfer sequence is code.
//
// The result has len(code)+2 nodes labeled 1..n (or the WithAlphabet set) and
// exactly len(code)+1 edges. An empty code yields the single edge 1-2.
//
// Errors:
//   - ErrInvalidInput: an entry outside the alphabet, a bad alphabet, a bad option.
//   - ErrInvariantViolation: no eligible label at some step.
//
// Complexity: O(n²) with MethodScan, O(n log n) with MethodHeap.
func Decode(code []int, opts ...Option) (*tree.Tree, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	n := len(code) + 2
	var treeOpts []tree.Option
	if o.Alphabet != nil {
		if len(o.Alphabet) != n {
			return nil, fmt.Errorf("%w: alphabet of %d labels for a code of length %d (need %d)",
				ErrInvalidInput, len(o.Alphabet), len(code), n)
		}
		treeOpts = append(treeOpts, tree.WithLabels(o.Alphabet...))
	}
	t, err := tree.New(n, treeOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// translate labels into arena slots; slot order is label order
	slots := make([]int, len(code))
	for pos, label := range code {
		i, ok := t.IndexOf(label)
		if !ok {
			return nil, fmt.Errorf("%w: code[%d]=%d is outside the alphabet of %d labels",
				ErrInvalidInput, pos, label, n)
		}
		slots[pos] = i
	}

	var edges [][2]int
	switch o.Method {
	case MethodHeap:
		edges, err = decodeHeap(slots, n)
	default:
		edges, err = decodeScan(slots, n)
	}
	if err != nil {
		return nil, err
	}

	labels := t.Labels()
	for step, e := range edges {
		u, v := labels[e[0]], labels[e[1]]
		o.Logger.Debug("attach", "step", step, "parent", u, "child", v)
		if err = t.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
	}

	return t, nil
}

// pendingCounts returns, per slot, how many times it occurs in code.
func pendingCounts(code []int, n int) []int {
	pending := make([]int, n)
	for _, c := range code {
		pending[c]++
	}

	return pending
}

// decodeScan is the reference rendition: a linear scan for the smallest slot
// that is neither removed nor still pending in the unconsumed suffix.
func decodeScan(code []int, n int) ([][2]int, error) {
	pending := pendingCounts(code, n)
	removed := make([]bool, n)
	edges := make([][2]int, 0, n-1)

	for i, c := range code {
		pick := -1
		for v := 0; v < n; v++ {
			if !removed[v] && pending[v] == 0 {
				pick = v
				break
			}
		}
		if pick < 0 {
			return nil, fmt.Errorf("%w: no candidate label at step %d", ErrInvariantViolation, i)
		}
		edges = append(edges, [2]int{c, pick})
		removed[pick] = true
		pending[c]-- // code[i] leaves the suffix
	}

	last := make([]int, 0, 2)
	for v := 0; v < n; v++ {
		if !removed[v] {
			last = append(last, v)
		}
	}
	if len(last) != 2 {
		return nil, fmt.Errorf("%w: %d labels remain after the last step, want 2", ErrInvariantViolation, len(last))
	}

	return append(edges, [2]int{last[0], last[1]}), nil
}

// decodeHeap keeps every eligible slot in a min-heap. A code slot becomes
// eligible exactly when its last pending occurrence is consumed.
func decodeHeap(code []int, n int) ([][2]int, error) {
	pending := pendingCounts(code, n)
	h := make(slotHeap, 0, n)
	for v := 0; v < n; v++ {
		if pending[v] == 0 {
			h = append(h, v)
		}
	}
	heap.Init(&h)
	edges := make([][2]int, 0, n-1)

	for i, c := range code {
		if h.Len() == 0 {
			return nil, fmt.Errorf("%w: no candidate label at step %d", ErrInvariantViolation, i)
		}
		pick := heap.Pop(&h).(int)
		edges = append(edges, [2]int{c, pick})
		pending[c]--
		if pending[c] == 0 {
			heap.Push(&h, c)
		}
	}

	if h.Len() != 2 {
		return nil, fmt.Errorf("%w: %d labels remain after the last step, want 2", ErrInvariantViolation, h.Len())
	}
	u := heap.Pop(&h).(int)
	v := heap.Pop(&h).(int)

	return append(edges, [2]int{u, v}), nil
}
