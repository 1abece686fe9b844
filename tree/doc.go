// Package tree provides an arena-backed, thread-safe in-memory representation
// of an undirected labeled tree over a fixed, unique set of positive integer
// labels.
//
// Model
//
//   - Nodes live in a dense slice owned by the Tree (the arena). Slot i holds
//     the i-th label in ascending order; with the default labels 1..n, slot i
//     holds label i+1.
//   - Neighbor links are arena indices, never pointers, so the symmetric
//     neighbor relation carries no ownership or lifetime implication.
//   - The adjacency matrix is a derived cache: every AddEdge invalidates it and
//     AdjacencyMatrix recomputes it from the neighbor lists on the next call.
//   - A sync.RWMutex guards the arena and the cache; concurrent readers are safe.
//
// Construction
//
//	t, err := tree.New(6)                          // labels 1..6, no edges
//	t, err := tree.New(3, tree.WithLabels(10, 20, 30))
//	t, err := tree.FromEdges(4, []tree.Edge{{1, 2}, {2, 3}, {3, 4}})
//	t, err := tree.FromAdjacency(m)                // from a *matrix.Adjacency
//
// Edge rules
//
//	AddEdge(a, b) links two existing labels. It rejects unknown labels
//	(ErrNotFound), self-loops (ErrSelfLoop) and repeated pairs
//	(ErrDuplicateEdge): a parallel edge would corrupt every degree-based
//	algorithm downstream.
//
// Tree-ness
//
//	Edge insertion does not enforce acyclicity or connectivity; a Tree is a
//	tree once it holds n-1 edges and is connected. Validate checks exactly that
//	with a breadth-first sweep.
//
// Errors
//
//   - ErrInvalidInput   bad construction arguments (n < 1, duplicate or non-positive labels).
//   - ErrNotFound       a referenced label is not in the label set.
//   - ErrSelfLoop       AddEdge(a, a); wraps ErrInvalidInput.
//   - ErrDuplicateEdge  AddEdge of an existing pair; wraps ErrInvalidInput.
//   - ErrNotTree        Validate failed; wraps ErrInvalidInput.
//
// Complexity (n = nodes, d = degree)
//
//   - New: O(n log n) (labels are sorted).
//   - AddEdge, HasEdge: O(d).
//   - Neighbors: O(d log d). Edges: O(n log n).
//   - AdjacencyMatrix: O(n²) when stale, O(n²) copy otherwise.
//   - Validate: O(n).
package tree
