package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/tree"
)

func TestParseEdgeList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tree.Edge
	}{
		{"space pairs", "1 2\n2 3\n", []tree.Edge{{U: 1, V: 2}, {U: 2, V: 3}}},
		{"dash pairs", "1-2\n 2 - 3 \n", []tree.Edge{{U: 1, V: 2}, {U: 2, V: 3}}},
		{"comma list", "1-2,2-3,3-4", []tree.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}}},
		{"comments and blanks", "# header\n\n5 6\n", []tree.Edge{{U: 5, V: 6}}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEdgeList(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEdgeListErrors(t *testing.T) {
	for _, input := range []string{"1", "1 2 3", "a b", "0 1", "1 2.5"} {
		_, err := parseEdgeList(strings.NewReader(input))
		assert.Error(t, err, input)
	}

	_, err := parseEdgeList(strings.NewReader("1 2\n2 x\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestTreeFromEdges(t *testing.T) {
	tr, err := treeFromEdges([]tree.Edge{{U: 40, V: 10}, {U: 10, V: 25}})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 25, 40}, tr.Labels())
	assert.True(t, tr.HasEdge(10, 40))

	_, err = treeFromEdges(nil)
	assert.ErrorContains(t, err, "no edges")
}
