package prufer_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvtree/prufer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSequence accepts every supported spelling of the exchange form.
func TestParseSequence(t *testing.T) {
	want := prufer.Sequence{5, 2, 4, 1}
	for _, text := range []string{
		"5 2 4 1",
		"5,2,4,1",
		"[5, 2, 4, 1]",
		"  [5 2\t4\n1]  ",
	} {
		got, err := prufer.ParseSequence(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}

	empty, err := prufer.ParseSequence("  ")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, 2, empty.Nodes())

	brackets, err := prufer.ParseSequence("[]")
	require.NoError(t, err)
	assert.Empty(t, brackets)
}

// TestParseSequence_Errors rejects malformed tokens and labels.
func TestParseSequence_Errors(t *testing.T) {
	for _, text := range []string{"1 x 3", "[1 2", "1 0", "-4", "1.5"} {
		_, err := prufer.ParseSequence(text)
		assert.ErrorIs(t, err, prufer.ErrInvalidInput, text)
	}
}

// TestSequence_Format fixes the canonical form and the size helpers.
func TestSequence_Format(t *testing.T) {
	s := prufer.Sequence{5, 2, 4, 1}
	assert.Equal(t, "5 2 4 1", s.String())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 6, s.Nodes())
	assert.Equal(t, "", prufer.Sequence{}.String())

	back, err := prufer.ParseSequence(s.String())
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

// TestCount checks Cayley's formula at the boundaries and a large n.
func TestCount(t *testing.T) {
	for n, want := range map[int]int64{1: 1, 2: 1, 3: 3, 4: 16, 5: 125, 6: 1296} {
		got, err := prufer.Count(n)
		require.NoError(t, err)
		assert.Equal(t, want, got.Int64(), "n=%d", n)
	}

	big, err := prufer.Count(30)
	require.NoError(t, err)
	// 30^28 = 3^28 * 10^28
	assert.Equal(t, "22876792454961"+strings.Repeat("0", 28), big.String())

	_, err = prufer.Count(0)
	assert.ErrorIs(t, err, prufer.ErrInvalidInput)
}
