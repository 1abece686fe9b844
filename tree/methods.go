// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: edge mutation and read-only queries over the arena.
// Concurrency:
//   - AddEdge takes the write lock and drops the matrix cache.
//   - Every query takes the read lock.
// Determinism:
//   - Labels, Neighbors, Edges and Leaves return ascending results.

package tree

import (
	"fmt"
	"sort"
	"strings"
)

// AddEdge links labels a and b with an undirected edge.
//
// Contract:
//   - Both labels must belong to the label set.
//   - a != b, and the pair must not already be linked.
//   - One call updates both neighbor lists; the relation stays symmetric.
//
// Rationale:
//   - A parallel edge or a loop would skew every degree-based count, and the
//     codec strips leaves by degree.
//
// Concurrency:
//   - Takes the write lock; the cached adjacency matrix is dropped under it.
//
// Errors: ErrNotFound (either label absent), ErrSelfLoop, ErrDuplicateEdge.
// Complexity: O(deg(a)).
func (t *Tree) AddEdge(a, b int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Resolve both endpoints to arena slots.
	i, ok := t.index[a]
	if !ok {
		return fmt.Errorf("AddEdge(%d,%d): %w: %d", a, b, ErrNotFound, a)
	}
	j, ok := t.index[b]
	if !ok {
		return fmt.Errorf("AddEdge(%d,%d): %w: %d", a, b, ErrNotFound, b)
	}
	if i == j {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrSelfLoop)
	}
	// Linear duplicate scan; tree degrees are small on average.
	for _, k := range t.adj[i] {
		if k == j {
			return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrDuplicateEdge)
		}
	}

	t.adj[i] = append(t.adj[i], j)
	t.adj[j] = append(t.adj[j], i)
	t.edges++
	t.cache = nil // matrix no longer reflects the neighbor lists

	return nil
}

// Len returns the number of nodes n.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.labels)
}

// EdgeCount returns the number of undirected edges.
func (t *Tree) EdgeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.edges
}

// Labels returns a copy of the label set in ascending order.
func (t *Tree) Labels() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]int(nil), t.labels...)
}

// Has reports whether label belongs to the label set.
func (t *Tree) Has(label int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.index[label]

	return ok
}

// IndexOf returns the arena slot (matrix row) of label.
func (t *Tree) IndexOf(label int) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[label]

	return i, ok
}

// LabelAt returns the label stored in arena slot i.
func (t *Tree) LabelAt(i int) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if i < 0 || i >= len(t.labels) {
		return 0, false
	}

	return t.labels[i], true
}

// neighborLabels converts slot i's neighbor slots into ascending labels.
// Caller must hold at least the read lock.
func (t *Tree) neighborLabels(i int) []int {
	out := make([]int, len(t.adj[i]))
	for k, j := range t.adj[i] {
		out[k] = t.labels[j]
	}
	sort.Ints(out)

	return out
}

// Neighbors returns the labels adjacent to label, ascending.
// Errors: ErrNotFound.
func (t *Tree) Neighbors(label int) ([]int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[label]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", label, ErrNotFound)
	}

	return t.neighborLabels(i), nil
}

// Node returns a snapshot of label's node.
// Errors: ErrNotFound.
func (t *Tree) Node(label int) (Node, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[label]
	if !ok {
		return Node{}, fmt.Errorf("Node(%d): %w", label, ErrNotFound)
	}

	return Node{Label: label, Neighbors: t.neighborLabels(i)}, nil
}

// Degree returns the number of neighbors of label.
// Errors: ErrNotFound.
func (t *Tree) Degree(label int) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[label]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", label, ErrNotFound)
	}

	return len(t.adj[i]), nil
}

// HasEdge reports whether a and b are adjacent. Unknown labels yield false.
func (t *Tree) HasEdge(a, b int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[a]
	if !ok {
		return false
	}
	j, ok := t.index[b]
	if !ok {
		return false
	}
	for _, k := range t.adj[i] {
		if k == j {
			return true
		}
	}

	return false
}

// Edges returns every edge once, canonical (U < V), sorted by (U, V).
// The slice is freshly allocated; callers may modify it.
// Complexity: O(n + E log E).
// Concurrency: read lock only.
func (t *Tree) Edges() []Edge {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Edge, 0, t.edges)
	for i, nbrs := range t.adj {
		for _, j := range nbrs {
			// slots are ascending by label, so i < j emits each pair once with U < V
			if i < j {
				out = append(out, Edge{U: t.labels[i], V: t.labels[j]})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].U != out[b].U {
			return out[a].U < out[b].U
		}
		return out[a].V < out[b].V
	})

	return out
}

// Leaves returns the labels of degree exactly 1, ascending.
func (t *Tree) Leaves() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []int
	for i, nbrs := range t.adj {
		if len(nbrs) == 1 {
			out = append(out, t.labels[i])
		}
	}

	return out
}

// Clone returns a deep copy sharing no state with t.
// The matrix cache is not carried over; the clone rebuilds it on first use.
// Complexity: O(n + E).
func (t *Tree) Clone() *Tree {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c := &Tree{
		labels: append([]int(nil), t.labels...),
		index:  make(map[int]int, len(t.index)),
		adj:    make([][]int, len(t.adj)),
		edges:  t.edges,
	}
	for l, i := range t.index {
		c.index[l] = i
	}
	for i, nbrs := range t.adj {
		c.adj[i] = append([]int(nil), nbrs...)
	}

	return c
}

// Equal reports whether t and other have the same label set and the same edge set.
// Insertion order of edges is irrelevant. Two nil trees are equal.
// Each side is read under its own read lock, one after the other, so comparing
// a tree with itself or two trees concurrently never deadlocks.
// Complexity: O(n + E log E).
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t == other {
		return true
	}
	la, lb := t.Labels(), other.Labels()
	if len(la) != len(lb) {
		return false
	}
	for i := range la {
		if la[i] != lb[i] {
			return false
		}
	}
	ea, eb := t.Edges(), other.Edges()
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if ea[i] != eb[i] {
			return false
		}
	}

	return true
}

// String renders "tree(n=N): U-V U-V ...".
func (t *Tree) String() string {
	edges := t.Edges()
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}

	head := fmt.Sprintf("tree(n=%d):", t.Len())
	if len(parts) == 0 {
		return head
	}

	return head + " " + strings.Join(parts, " ")
}
