package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvtree/tree"
)

// Options configures DOT output.
type Options struct {
	// Highlight lists labels drawn filled, e.g. the leaves or a Prüfer code's entries.
	// Labels outside the tree are ignored.
	Highlight []int

	// Title, when non-empty, becomes the graph label.
	Title string
}

// ToDOT converts t to Graphviz DOT format. Nodes and edges are emitted in
// ascending order. The result can be rendered with [RenderSVG].
func ToDOT(t *tree.Tree, opts Options) string {
	marked := make(map[int]bool, len(opts.Highlight))
	for _, l := range opts.Highlight {
		marked[l] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph T {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
		buf.WriteString("  labelloc=t;\n")
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, l := range t.Labels() {
		fmt.Fprintf(&buf, "  %s%s;\n", nodeID(l), fmtAttrs(marked[l]))
	}

	buf.WriteString("\n")
	for _, e := range t.Edges() {
		fmt.Fprintf(&buf, "  %s -- %s;\n", nodeID(e.U), nodeID(e.V))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeID quotes a label so DOT never reads it as a numeral.
func nodeID(label int) string {
	return strconv.Quote(strconv.Itoa(label))
}

func fmtAttrs(highlight bool) string {
	if !highlight {
		return ""
	}
	return " [fillcolor=lightblue]"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
