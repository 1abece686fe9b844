package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/prufer"
	"github.com/katalvlaran/lvtree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Shapes runs table-driven topology checks for each deterministic constructor.
func TestBuilders_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   builder.Constructor
		wantN  int
		want   string
		leaves []int
	}{
		{"Path(2)", builder.Path(2), 2, "tree(n=2): 1-2", []int{1, 2}},
		{"Path(5)", builder.Path(5), 5, "tree(n=5): 1-2 2-3 3-4 4-5", []int{1, 5}},
		{"Star(5)", builder.Star(5), 5, "tree(n=5): 1-2 1-3 1-4 1-5", []int{2, 3, 4, 5}},
		{"Binary(1)", builder.Binary(1), 1, "tree(n=1):", nil},
		{"Binary(6)", builder.Binary(6), 6, "tree(n=6): 1-2 1-3 2-4 2-5 3-6", []int{4, 5, 6}},
		{"Caterpillar(1,0)", builder.Caterpillar(1, 0), 1, "tree(n=1):", nil},
		{"Caterpillar(3,1)", builder.Caterpillar(3, 1), 6, "tree(n=6): 1-2 1-4 2-3 2-5 3-6", []int{4, 5, 6}},
		{"Caterpillar(2,2)", builder.Caterpillar(2, 2), 6, "tree(n=6): 1-2 1-3 1-4 2-5 2-6", []int{3, 4, 5, 6}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tr, err := builder.Build(tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, tr.Len())
			assert.Equal(t, tc.want, tr.String())
			assert.Equal(t, tc.leaves, tr.Leaves())
			assert.NoError(t, tr.Validate())
		})
	}
}

// TestBuilders_Errors checks size validation and RNG requirements.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	for name, ctor := range map[string]builder.Constructor{
		"Path(1)":           builder.Path(1),
		"Star(0)":           builder.Star(0),
		"Binary(0)":         builder.Binary(0),
		"Caterpillar(0,3)":  builder.Caterpillar(0, 3),
		"Caterpillar(2,-1)": builder.Caterpillar(2, -1),
		"Random(0)":         builder.Random(0),
	} {
		_, err := builder.Build(ctor, builder.WithSeed(1))
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}

	_, err := builder.Build(builder.Random(5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.RandomSequence(5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestBuilders_LabelScheme relabels shapes and rejects unusable schemes.
func TestBuilders_LabelScheme(t *testing.T) {
	t.Parallel()

	tens := builder.WithLabelScheme(func(i int) int { return 10 * (i + 1) })
	tr, err := builder.Build(builder.Star(4), tens)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40}, tr.Labels())
	assert.Equal(t, "tree(n=4): 10-20 10-30 10-40", tr.String())

	rnd, err := builder.Build(builder.Random(30), tens, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 30, rnd.Len())
	assert.True(t, rnd.Has(300))
	assert.NoError(t, rnd.Validate())

	_, err = builder.Build(builder.Path(3), builder.WithLabelScheme(func(int) int { return 7 }))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, tree.ErrInvalidInput)

	_, err = builder.Build(builder.Path(3), builder.WithLabelScheme(func(i int) int { return i }))
	assert.ErrorIs(t, err, builder.ErrConstructFailed, "label 0 is not positive")
}

// TestRandom_Deterministic fixes the tree per seed and matches RandomSequence.
func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 8, 64} {
		a, err := builder.Build(builder.Random(n), builder.WithSeed(99))
		require.NoError(t, err)
		b, err := builder.Build(builder.Random(n), builder.WithRand(rand.New(rand.NewSource(99))))
		require.NoError(t, err)
		assert.True(t, a.Equal(b), "n=%d", n)
		assert.Equal(t, n, a.Len())
		assert.NoError(t, a.Validate())

		if n < 2 {
			continue
		}
		seq, err := builder.RandomSequence(n, builder.WithSeed(99))
		require.NoError(t, err)
		require.Len(t, seq, n-2)
		enc, err := prufer.Encode(a)
		require.NoError(t, err)
		assert.Equal(t, seq, enc, "n=%d", n)
	}
}

// TestRandomSequence_SingleNode rejects n=1: the empty code belongs to the 2-node tree.
func TestRandomSequence_SingleNode(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 0, -4} {
		seq, err := builder.RandomSequence(n, builder.WithSeed(1))
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, "n=%d", n)
		assert.Nil(t, seq)
	}

	empty, err := builder.RandomSequence(2, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Empty(t, empty)
	tr, err := prufer.Decode(empty)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())
}

// TestRandom_Coverage draws many trees on 4 nodes and expects all 16 to show up.
func TestRandom_Coverage(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	seen := make(map[string]int)
	for i := 0; i < 2000; i++ {
		tr, err := builder.Build(builder.Random(4), builder.WithRand(r))
		require.NoError(t, err)
		seen[tr.String()]++
	}
	assert.Len(t, seen, 16)
	for k, c := range seen {
		assert.Greater(t, c, 50, "tree %s drawn only %d times", k, c)
	}
}

// TestOptions_Panics mirrors the fail-fast policy of option constructors.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithLabelScheme(nil) })
}
