// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: tree-ness check (edge count + connectivity) by breadth-first sweep.

package tree

import "fmt"

// Validate reports whether the edge set is a spanning tree of the label set:
// exactly n-1 edges and a single connected component.
// Errors: ErrNotTree (wraps ErrInvalidInput) with the failing condition.
// Complexity: O(n).
func (t *Tree) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := len(t.labels)
	if t.edges != n-1 {
		return fmt.Errorf("%w: %d edges for %d nodes", ErrNotTree, t.edges, n)
	}

	// BFS from slot 0; with n-1 edges, reaching every slot rules out cycles too.
	visited := make([]bool, n)
	queue := make([]int, 0, n)
	visited[0] = true
	queue = append(queue, 0)
	reached := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range t.adj[cur] {
			if !visited[nbr] {
				visited[nbr] = true
				reached++
				queue = append(queue, nbr)
			}
		}
	}
	if reached != n {
		return fmt.Errorf("%w: disconnected (%d of %d nodes reachable from %d)",
			ErrNotTree, reached, n, t.labels[0])
	}

	return nil
}
