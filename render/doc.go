// Package render draws a tree.Tree as a node-link diagram.
//
// ToDOT emits an undirected Graphviz "graph" with one node per label and one
// "--" line per edge, both in ascending order, so the text is stable for a
// given tree and can be diffed or stored as a golden file. RenderSVG lays the
// DOT out in-process with [github.com/goccy/go-graphviz]; no dot binary is
// needed.
//
//	dot := render.ToDOT(t, render.Options{Title: "5 2 4 1", Highlight: t.Leaves()})
//	svg, err := render.RenderSVG(ctx, dot)
package render
