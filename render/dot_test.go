package render

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/prufer"
	"github.com/katalvlaran/lvtree/tree"
)

func TestToDOT(t *testing.T) {
	tr, err := prufer.Decode([]int{5, 2, 4, 1})
	require.NoError(t, err)

	got := ToDOT(tr, Options{Title: "5 2 4 1", Highlight: []int{3, 6, 99}})
	want := `graph T {
  bgcolor="transparent";
  label="5 2 4 1";
  labelloc=t;
  node [shape=circle, style=filled, fillcolor=white, fontsize=14];

  "1";
  "2";
  "3" [fillcolor=lightblue];
  "4";
  "5";
  "6" [fillcolor=lightblue];

  "1" -- "4";
  "1" -- "6";
  "2" -- "4";
  "2" -- "5";
  "3" -- "5";
}
`
	assert.Equal(t, want, got)
}

func TestToDOTCounts(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges []tree.Edge
	}{
		{"single node", 1, nil},
		{"pair", 2, []tree.Edge{{U: 1, V: 2}}},
		{"star", 5, []tree.Edge{{U: 3, V: 1}, {U: 3, V: 2}, {U: 3, V: 4}, {U: 3, V: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := tree.FromEdges(tt.n, tt.edges)
			require.NoError(t, err)

			dot := ToDOT(tr, Options{})
			assert.Equal(t, len(tt.edges), strings.Count(dot, " -- "))
			assert.NotContains(t, dot, "label=")
			assert.NotContains(t, dot, "lightblue")
			for _, l := range tr.Labels() {
				assert.Contains(t, dot, "  "+nodeID(l)+";\n")
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	tr, err := prufer.Decode([]int{5, 2, 4, 1})
	require.NoError(t, err)

	svg, err := RenderSVG(context.Background(), ToDOT(tr, Options{Title: "5 2 4 1", Highlight: tr.Leaves()}))
	require.NoError(t, err)
	out := string(svg)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	for _, l := range tr.Labels() {
		assert.Contains(t, out, ">"+strconv.Itoa(l)+"<", "node %d is drawn with its label", l)
	}
}
