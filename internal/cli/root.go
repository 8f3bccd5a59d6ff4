// Package cli wires the percolation commands onto cobra.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/internal/logging"
)

// Version is reported by the version command; set with -ldflags.
var Version = "dev"

// app is the state shared by all subcommands of one root command.
type app struct {
	cfg    config.Config
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

// NewRootCommand builds the percolation command tree. Normal output goes to
// out; logs go to errOut.
func NewRootCommand(cfg config.Config, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: cfg, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "percolation",
		Short: "Estimate the site-percolation threshold of an n×n grid",
		Long: "percolation simulates site percolation on an n×n grid.\n\n" +
			"The grid size and trial count are arguments of the stats subcommand,\n" +
			"not of percolation itself:\n\n" +
			"  percolation stats N T   run T Monte Carlo trials and report the threshold estimate\n" +
			"  percolation grid N      open sites by hand and inspect the resulting grid\n",
		Example: "  percolation stats 200 100\n" +
			"  percolation grid 3 --open 1,2 --open 2,2 --open 3,2",
		// Positionals reach RunE only when they name no subcommand.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return usageError(fmt.Errorf("unknown command %q: usage is `percolation stats N T`", args[0]))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.errOut, a.cfg.LogLevel, a.cfg.LogFormat)
			if err != nil {
				return usageError(err)
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&a.cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")

	root.AddCommand(a.statsCommand(), a.gridCommand(), a.versionCommand())

	return root
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(a.out, "percolation "+Version+"\n")
			return err
		},
	}
}

// exactArgs is cobra.ExactArgs with the error marked as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
