package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/prufer"
)

func (c *CLI) randomCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "random <n>",
		Short: "Draw a uniformly random labeled tree on n nodes",
		Long: `Draw a uniformly random Prüfer sequence and print it with its tree.

The seed comes from --seed, then the config file, then the clock. It is
always printed so a draw can be repeated.`,
		Example: `  prufer random 10 --seed 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			switch {
			case cmd.Flags().Changed("seed"):
			case c.cfg.Seed != nil:
				seed = *c.cfg.Seed
			default:
				seed = time.Now().UnixNano()
			}
			logger := loggerFromContext(ctx)
			logger.Debug("drawing tree", "n", n, "seed", seed)

			t, err := builder.Build(builder.Random(n), builder.WithSeed(seed))
			if err != nil {
				return err
			}
			seq := prufer.Sequence{}
			if n >= 2 {
				if seq, err = prufer.Encode(t, c.codecOptions(ctx)...); err != nil {
					return err
				}
			}

			edges := make([]string, 0, t.EdgeCount())
			for _, e := range t.Edges() {
				edges = append(edges, e.String())
			}

			out := cmd.OutOrStdout()
			printKeyValue(out, "seed", strconv.FormatInt(seed, 10))
			printKeyValue(out, "sequence", "["+seq.String()+"]")
			printKeyValue(out, "edges", strings.Join(edges, " "))
			printStats(out, t.Len(), t.EdgeCount(), len(t.Leaves()))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (default: config seed, else the clock)")

	return cmd
}

func (c *CLI) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count <n>",
		Short: "Print the number of labeled trees on n nodes, n^(n-2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			total, err := prufer.Count(n)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), StyleNumber.Render(total.String()))
			return err
		},
	}
}

func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("n: %q is not an integer", arg)
	}
	return n, nil
}
