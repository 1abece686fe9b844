// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Tree, Node, Edge, Option, sentinel errors and the New constructor.

package tree

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvtree/matrix"
)

// Sentinel errors for tree operations.
var (
	// ErrInvalidInput indicates malformed construction or mutation arguments.
	ErrInvalidInput = errors.New("tree: invalid input")

	// ErrNotFound indicates an operation referenced a label outside the label set.
	ErrNotFound = errors.New("tree: label not found")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	ErrSelfLoop = fmt.Errorf("%w: self-loop", ErrInvalidInput)

	// ErrDuplicateEdge indicates AddEdge was called for an already linked pair.
	ErrDuplicateEdge = fmt.Errorf("%w: duplicate edge", ErrInvalidInput)

	// ErrNotTree indicates the edge set is not a spanning tree of the label set.
	ErrNotTree = fmt.Errorf("%w: not a tree", ErrInvalidInput)
)

// Edge is an undirected edge between two labels.
// Edges returned by Tree are canonical: U < V.
type Edge struct {
	U int
	V int
}

// String renders "U-V".
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.U, e.V) }

// Node is a read-only snapshot of one node: its label and its neighbor labels (ascending).
type Node struct {
	Label     int
	Neighbors []int
}

// Degree returns the number of neighbors.
func (n Node) Degree() int { return len(n.Neighbors) }

// config collects construction options before the arena is allocated.
type config struct {
	labels []int // explicit labels; nil means 1..n, empty non-nil means an explicit empty set
}

// Option configures a Tree at construction time.
type Option func(*config)

// WithLabels replaces the default labels 1..n with a custom injective label set.
// Labels must be positive, unique, and exactly n of them must be supplied.
// The arena stores them in ascending order regardless of the order given here.
func WithLabels(labels ...int) Option {
	return func(c *config) {
		// non-nil even for zero labels, so New rejects an explicit empty set
		c.labels = append(make([]int, 0, len(labels)), labels...)
	}
}

// Tree is an undirected labeled tree (or, while being built, forest) held in an arena.
//
// mu guards every field below it. cache is the derived adjacency matrix; nil means stale.
type Tree struct {
	mu sync.RWMutex

	labels []int       // arena slot → label, ascending
	index  map[int]int // label → arena slot
	adj    [][]int     // arena slot → neighbor slots, insertion order
	edges  int         // number of undirected edges

	cache *matrix.Adjacency // derived; invalidated by AddEdge
}

// New creates a Tree with n nodes and no edges.
// Labels default to 1..n; see WithLabels.
// Errors: ErrInvalidInput when n < 1, or when custom labels have the wrong
// count, a non-positive value, or a duplicate.
// Complexity: O(n log n).
func New(n int, opts ...Option) (*Tree, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d < 1", ErrInvalidInput, n)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	labels := cfg.labels
	if labels == nil {
		labels = make([]int, n)
		for i := range labels {
			labels[i] = i + 1
		}
	} else if len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d nodes", ErrInvalidInput, len(labels), n)
	}

	sort.Ints(labels)
	index := make(map[int]int, n)
	for i, l := range labels {
		if l < 1 {
			return nil, fmt.Errorf("%w: label %d is not positive", ErrInvalidInput, l)
		}
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("%w: duplicate label %d", ErrInvalidInput, l)
		}
		index[l] = i
	}

	return &Tree{
		labels: labels,
		index:  index,
		adj:    make([][]int, n),
	}, nil
}

// FromEdges creates a Tree with n nodes and adds every edge in order.
// Any AddEdge error aborts construction and is returned wrapped.
func FromEdges(n int, edges []Edge, opts ...Option) (*Tree, error) {
	t, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = t.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("FromEdges(%s): %w", e, err)
		}
	}

	return t, nil
}

// FromAdjacency creates a Tree whose edge relation is the upper triangle of m.
// Row i maps to the i-th label in ascending order.
func FromAdjacency(m *matrix.Adjacency, opts ...Option) (*Tree, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrInvalidInput)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	t, err := New(m.Size(), opts...)
	if err != nil {
		return nil, err
	}
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v, _ := m.At(i, j); v == 1 {
				if err = t.AddEdge(t.labels[i], t.labels[j]); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}
