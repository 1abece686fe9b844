package cli

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvtree/tree"
)

// parseEdgeList reads one edge per line as "u v" or "u-v". Commas also
// separate edges, so "1-2,2-3" works on a single line. Blank lines and lines
// starting with '#' are skipped.
func parseEdgeList(r io.Reader) ([]tree.Edge, error) {
	var edges []tree.Edge
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		for _, item := range strings.Split(sc.Text(), ",") {
			item = strings.TrimSpace(item)
			if item == "" || strings.HasPrefix(item, "#") {
				continue
			}
			e, err := parseEdge(item)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			edges = append(edges, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read edges: %w", err)
	}

	return edges, nil
}

func parseEdge(item string) (tree.Edge, error) {
	fields := strings.FieldsFunc(item, func(r rune) bool { return r == '-' || unicode.IsSpace(r) })
	if len(fields) != 2 {
		return tree.Edge{}, fmt.Errorf("edge %q: want two labels", item)
	}
	var ends [2]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 {
			return tree.Edge{}, fmt.Errorf("edge %q: label %q is not a positive integer", item, f)
		}
		ends[i] = v
	}

	return tree.Edge{U: ends[0], V: ends[1]}, nil
}

// treeFromEdges builds a tree whose label set is exactly the labels the edges mention.
func treeFromEdges(edges []tree.Edge) (*tree.Tree, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("no edges given")
	}
	seen := make(map[int]bool)
	var labels []int
	for _, e := range edges {
		for _, l := range []int{e.U, e.V} {
			if !seen[l] {
				seen[l] = true
				labels = append(labels, l)
			}
		}
	}
	sort.Ints(labels)

	return tree.FromEdges(len(labels), edges, tree.WithLabels(labels...))
}
