package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/prufer"
	"github.com/katalvlaran/lvtree/render"
	"github.com/katalvlaran/lvtree/tree"
)

type decodeOpts struct {
	format string
	output string
	labels string
}

func (c *CLI) decodeCommand() *cobra.Command {
	var opts decodeOpts

	cmd := &cobra.Command{
		Use:   "decode [code...]",
		Short: "Build the tree behind a Prüfer sequence",
		Long: `Decode a Prüfer sequence of length n-2 into a tree on n nodes.

Entries may be given as separate arguments or as one "[5, 2, 4, 1]" string.
With no entries the result is the single edge 1-2.`,
		Example: `  prufer decode 5 2 4 1
  prufer decode "[3, 3, 3]" --format dot -o star.dot
  prufer decode 20 --labels 10,20,30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.cfg.Format
			}
			return c.runDecode(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatEdges, "output format: "+strings.Join(formats, ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().StringVar(&opts.labels, "labels", "", "custom label set of len(code)+2 labels (default 1..n)")

	return cmd
}

func (c *CLI) runDecode(cmd *cobra.Command, args []string, opts decodeOpts) error {
	ctx := cmd.Context()
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)

	code, err := prufer.ParseSequence(strings.Join(args, " "))
	if err != nil {
		return err
	}
	popts := c.codecOptions(ctx)
	if opts.labels != "" {
		labels, err := prufer.ParseSequence(opts.labels)
		if err != nil {
			return fmt.Errorf("--labels: %w", err)
		}
		popts = append(popts, prufer.WithAlphabet(labels...))
	}

	prog := newProgress(logger)
	t, err := prufer.Decode(code, popts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("decoded %d nodes", t.Len()))

	data, err := formatTree(ctx, t, code, opts.format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output == "" {
		_, err = out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(out, "decoded %d nodes as %s", t.Len(), opts.format)
	printFile(out, opts.output)

	return nil
}

// treeJSON is the --format json document.
type treeJSON struct {
	Code  []int    `json:"code"`
	Nodes []int    `json:"nodes"`
	Edges [][2]int `json:"edges"`
}

// formatTree renders t in the named format.
func formatTree(ctx context.Context, t *tree.Tree, code prufer.Sequence, format string) ([]byte, error) {
	switch format {
	case formatMatrix:
		return []byte(t.AdjacencyMatrix().String()), nil

	case formatDOT, formatSVG:
		dot := render.ToDOT(t, render.Options{Title: code.String(), Highlight: t.Leaves()})
		if format == formatDOT {
			return []byte(dot), nil
		}
		return render.RenderSVG(ctx, dot)

	case formatJSON:
		doc := treeJSON{Code: code, Nodes: t.Labels(), Edges: [][2]int{}}
		if doc.Code == nil {
			doc.Code = []int{}
		}
		for _, e := range t.Edges() {
			doc.Edges = append(doc.Edges, [2]int{e.U, e.V})
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil

	default:
		var sb strings.Builder
		for _, e := range t.Edges() {
			sb.WriteString(e.String())
			sb.WriteByte('\n')
		}
		return []byte(sb.String()), nil
	}
}

// codecOptions carries the configured method and the command logger into the codec.
func (c *CLI) codecOptions(ctx context.Context) []prufer.Option {
	return []prufer.Option{
		prufer.WithMethod(c.cfg.Method),
		prufer.WithLogger(loggerFromContext(ctx)),
	}
}
