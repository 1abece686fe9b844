package prufer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvtree/prufer"
	"github.com/katalvlaran/lvtree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncode_KnownVector encodes the hand-checked tree back to its code.
func TestEncode_KnownVector(t *testing.T) {
	tr, err := tree.FromEdges(6, knownEdges)
	require.NoError(t, err)

	for _, m := range methods {
		t.Run(m, func(t *testing.T) {
			seq, err := prufer.Encode(tr, prufer.WithMethod(m))
			require.NoError(t, err)
			assert.Equal(t, prufer.Sequence(knownCode), seq)
		})
	}
}

// TestEncode_Boundaries covers n=1 (rejected), n=2 (empty) and nil input.
func TestEncode_Boundaries(t *testing.T) {
	single, err := tree.New(1)
	require.NoError(t, err)
	_, err = prufer.Encode(single)
	assert.ErrorIs(t, err, prufer.ErrInvalidInput, "no Prüfer sequence exists for n=1")

	_, err = prufer.Encode(nil)
	assert.ErrorIs(t, err, prufer.ErrInvalidInput)

	pair, err := tree.FromEdges(2, []tree.Edge{{U: 2, V: 1}})
	require.NoError(t, err)
	for _, m := range methods {
		seq, err := prufer.Encode(pair, prufer.WithMethod(m))
		require.NoError(t, err)
		assert.NotNil(t, seq)
		assert.Empty(t, seq)
	}

	_, err = prufer.Encode(pair, prufer.WithMethod("nope"))
	assert.ErrorIs(t, err, prufer.ErrInvalidInput)
}

// TestEncode_DoesNotMutate verifies the caller's tree and its cached matrix are untouched.
func TestEncode_DoesNotMutate(t *testing.T) {
	tr, err := tree.FromEdges(6, knownEdges)
	require.NoError(t, err)
	before := tr.AdjacencyMatrix()

	for _, m := range methods {
		_, err = prufer.Encode(tr, prufer.WithMethod(m))
		require.NoError(t, err)
	}

	assert.Equal(t, knownEdges, tr.Edges())
	assert.True(t, before.Equal(tr.AdjacencyMatrix()), "encode works on a private matrix copy")
}

// TestEncode_NotATree covers inputs that violate the tree precondition.
func TestEncode_NotATree(t *testing.T) {
	// triangle 1-2-3 plus isolated 4: no node of degree 1 exists
	cyclic, err := tree.FromEdges(4, []tree.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 1}})
	require.NoError(t, err)
	for _, m := range methods {
		_, err = prufer.Encode(cyclic, prufer.WithMethod(m))
		assert.ErrorIs(t, err, prufer.ErrInvariantViolation, m)
	}

	// forest 1-2, 3-4: encodes to something, but WithValidation rejects it up front
	forest, err := tree.FromEdges(4, []tree.Edge{{U: 1, V: 2}, {U: 3, V: 4}})
	require.NoError(t, err)
	_, err = prufer.Encode(forest, prufer.WithValidation())
	assert.ErrorIs(t, err, prufer.ErrInvalidInput)
}

// TestEncode_Range checks length and alphabet of every encoded sequence for n=6.
func TestEncode_Range(t *testing.T) {
	const n = 6
	forEachCode(n, func(code []int) {
		tr, err := prufer.Decode(code)
		require.NoError(t, err)
		seq, err := prufer.Encode(tr)
		require.NoError(t, err)
		require.Len(t, seq, n-2)
		for _, v := range seq {
			require.True(t, v >= 1 && v <= n, "entry %d outside [1,%d]", v, n)
		}
	})
}

// TestEncode_CustomLabels encodes a tree over a non-contiguous label set.
func TestEncode_CustomLabels(t *testing.T) {
	// star around 50 with leaves 5, 500, 7
	tr, err := tree.FromEdges(4,
		[]tree.Edge{{U: 50, V: 5}, {U: 50, V: 500}, {U: 50, V: 7}},
		tree.WithLabels(5, 7, 50, 500))
	require.NoError(t, err)

	seq, err := prufer.Encode(tr)
	require.NoError(t, err)
	assert.Equal(t, prufer.Sequence{50, 50}, seq)

	back, err := prufer.Decode(seq, prufer.WithAlphabet(tr.Labels()...))
	require.NoError(t, err)
	assert.True(t, tr.Equal(back))
}

// TestEncode_Logger checks that a debug logger sees one line per elimination.
func TestEncode_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	tr, err := tree.FromEdges(6, knownEdges)
	require.NoError(t, err)
	_, err = prufer.Encode(tr, prufer.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(buf.String(), "eliminate"), "one debug line per step")
	assert.Contains(t, buf.String(), "leaf=3")
}
