package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/prufer"
)

func (c *CLI) encodeCommand() *cobra.Command {
	var inline string

	cmd := &cobra.Command{
		Use:   "encode [edges-file]",
		Short: "Print the Prüfer sequence of a tree",
		Long: `Encode a tree given as an edge list, one "u v" or "u-v" pair per line.

The label set is every label the edges mention. Read from the named file,
from stdin when the file is "-" or omitted, or from --edges.`,
		Example: `  prufer encode tree.txt
  printf '1 2\n2 3\n' | prufer encode -
  prufer encode --edges 1-4,1-6,2-4,2-5,3-5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			if inline != "" && len(args) > 0 {
				return fmt.Errorf("give either an edges file or --edges, not both")
			}

			var src io.Reader
			switch {
			case inline != "":
				src = strings.NewReader(inline)
			case len(args) == 0 || args[0] == "-":
				src = cmd.InOrStdin()
			default:
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}

			return c.runEncode(cmd, src)
		},
	}

	cmd.Flags().StringVar(&inline, "edges", "", `inline edge list, e.g. "1-2,2-3"`)

	return cmd
}

func (c *CLI) runEncode(cmd *cobra.Command, src io.Reader) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	edges, err := parseEdgeList(src)
	if err != nil {
		return err
	}
	t, err := treeFromEdges(edges)
	if err != nil {
		return err
	}
	logger.Debug("read tree", "nodes", t.Len(), "edges", t.EdgeCount())

	prog := newProgress(logger)
	seq, err := prufer.Encode(t, append(c.codecOptions(ctx), prufer.WithValidation())...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("encoded %d nodes", t.Len()))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), seq.String())
	return err
}
