package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsort/harness"
	"github.com/katalvlaran/lvsort/internal/config"
)

const benchExample = `  # Benchmark everything with defaults and print a table
  lvsort bench

  # Only the n log n sorts on large random input, as YAML
  lvsort bench --sizes 100000,1000000 --shapes random --sort-algorithms merge,quick,heap --search-algorithms "" --format yaml

  # Settings from a file; flags and LVSORT_* variables override it
  lvsort bench --config bench.toml --output report.json --format json`

// benchFlags maps bench flags onto config keys.
var benchFlags = map[string]string{
	"seed":               "seed",
	"workers":            "workers",
	"repeats":            "repeats",
	"searches-per-trial": "searches_per_trial",
	"sizes":              "sizes",
	"shapes":             "shapes",
	"sort-algorithms":    "sort_algorithms",
	"search-algorithms":  "search_algorithms",
	"format":             "format",
	"output":             "output",
	"log-level":          "log_level",
}

func (c *Commands) newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bench",
		Short:   "Run the benchmark harness and write a report",
		Example: benchExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for flag, key := range benchFlags {
				f := cmd.Flags().Lookup(flag)
				if f == nil {
					f = cmd.InheritedFlags().Lookup(flag)
				}
				// only explicitly set flags override file and env values
				if f != nil && f.Changed {
					if err := c.v.BindPFlag(key, f); err != nil {
						return err
					}
				}
			}
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(c.v, path)
			if err != nil {
				return err
			}
			if err = c.applyLogLevel(cfg.LogLevel); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return c.runBench(ctx, cfg, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.Int64("seed", 0, "Run seed (0 selects the default seed)")
	f.Int("workers", harness.DefaultWorkers, "Worker pool size")
	f.Int("repeats", harness.DefaultRepeats, "Timed repeats per trial")
	f.Int("searches-per-trial", harness.DefaultSearchesPerTrial, "Targets probed per search repeat")
	f.IntSlice("sizes", nil, "Input sizes")
	f.StringSlice("shapes", nil, "Input shapes for sort trials")
	f.StringSlice("sort-algorithms", nil, "Sorting algorithms to run")
	f.StringSlice("search-algorithms", nil, "Search algorithms to run")
	f.String("format", string(harness.FormatText), "Report format (text, json, yaml, toml)")
	f.StringP("output", "o", "", "Write the report to this file instead of stdout")

	return cmd
}

func (c *Commands) runBench(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	plan, err := cfg.Plan()
	if err != nil {
		return err
	}
	format, err := harness.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	runner := harness.New(
		harness.WithLogger(c.lggr),
		harness.WithWorkers(cfg.Workers),
		harness.WithSeed(cfg.Seed),
	)
	rep, err := runner.Run(ctx, plan)
	if err != nil {
		return err
	}

	w := stdout
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer file.Close()
		w = file
	}
	if err = rep.Encode(w, format); err != nil {
		return err
	}
	if cfg.Output != "" {
		c.lggr.Infow("report written", "path", cfg.Output, "format", string(format), "results", len(rep.Results))
	}

	return nil
}
