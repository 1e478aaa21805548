// Package cli wires the lvsort cobra command tree.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsort/internal/logger"
)

// Commands holds state shared by every command of one invocation.
type Commands struct {
	v    *viper.Viper
	lggr logger.Logger
	// ownLogger is set when lggr was built from flags and may be rebuilt
	// once the config file is read.
	ownLogger bool
}

// NewRootCmd builds the lvsort command tree. When lggr is nil a console
// logger is created from --log-level before any subcommand runs.
func NewRootCmd(lggr logger.Logger) *cobra.Command {
	c := &Commands{v: viper.New(), lggr: lggr}

	root := &cobra.Command{
		Use:          "lvsort",
		Short:        "Sorting and searching algorithm suite",
		Long:         "lvsort runs classic sorting and searching algorithms on your input or on generated benchmarks.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.initLogger(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.lggr != nil {
				_ = c.lggr.Sync()
			}
		},
	}
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("config", "", "Path to a yaml, toml or json config file")

	root.AddCommand(
		c.newSortCmd(),
		c.newSearchCmd(),
		c.newBenchCmd(),
		c.newAlgorithmsCmd(),
	)

	return root
}

func (c *Commands) initLogger(cmd *cobra.Command) error {
	if c.lggr != nil {
		return nil
	}
	levelStr, _ := cmd.Flags().GetString("log-level")
	level, err := logger.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	lggr, err := logger.NewCLI(level)
	if err != nil {
		return err
	}
	c.lggr = lggr
	c.ownLogger = true

	return nil
}

// applyLogLevel rebuilds an owned logger at the configured level.
func (c *Commands) applyLogLevel(levelStr string) error {
	if !c.ownLogger {
		return nil
	}
	level, err := logger.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	lggr, err := logger.NewCLI(level)
	if err != nil {
		return err
	}
	c.lggr = lggr

	return nil
}

// parseInts converts positional arguments into integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not an integer", i+1, a)
		}
		out[i] = v
	}

	return out, nil
}
