// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: derived adjacency-matrix cache.

package tree

import "github.com/katalvlaran/lvtree/matrix"

// AdjacencyMatrix returns the n×n symmetric 0/1 matrix of the current edge set.
// Row/column i corresponds to the i-th label in ascending order (label i+1 for
// the default labels). The matrix is rebuilt from the neighbor lists when the
// cache is stale and cached for later calls; the caller always receives an
// independent copy it may mutate freely.
// Complexity: O(n²).
func (t *Tree) AdjacencyMatrix() *matrix.Adjacency {
	t.mu.RLock()
	if t.cache != nil {
		m := t.cache.Clone()
		t.mu.RUnlock()
		return m
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	// another writer may have refreshed the cache between the two locks
	if t.cache == nil {
		t.cache = t.buildMatrix()
	}

	return t.cache.Clone()
}

// buildMatrix materializes the neighbor lists. Caller must hold the write lock.
func (t *Tree) buildMatrix() *matrix.Adjacency {
	m, _ := matrix.NewAdjacency(len(t.labels)) // n >= 1 is guaranteed by New
	for i, nbrs := range t.adj {
		for _, j := range nbrs {
			_ = m.Connect(i, j) // slots are in range and AddEdge rejects loops
		}
	}

	return m
}
