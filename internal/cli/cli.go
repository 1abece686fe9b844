// Package cli implements the prufer command-line interface.
//
// The commands wrap the in-process API: decode turns a sequence into a tree
// (edge list, adjacency matrix, DOT, SVG or JSON), encode reads an edge list
// and prints its sequence, random draws a uniform random tree, and count
// prints Cayley's n^(n-2).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// the per-step trace of the codec. Loggers are passed through context.Context.
//
// # Configuration
//
// --config points at a TOML file with defaults for method, format and seed.
// Explicit flags win over the file.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "prufer"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string
	method     string
	cfg        config
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), cfg: defaultConfig()}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Prüfer sequence codec for labeled trees",
		Long:         `prufer converts between labeled trees and their Prüfer sequences, draws uniform random trees and counts them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if err := c.loadConfig(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.configPath, "config", "", "TOML file with defaults for method, format and seed")
	pf.StringVar(&c.method, "method", "", "minimum search: scan (default) or heap")

	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.countCommand())

	return root
}

// loadConfig reads --config (if any) and lets an explicit --method override it.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	if c.configPath != "" {
		cfg, err := readConfig(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		c.Logger.Debug("loaded config", "path", c.configPath, "method", cfg.Method, "format", cfg.Format)
	}
	if cmd.Flags().Changed("method") {
		c.cfg.Method = c.method
	}

	return c.cfg.validate()
}
