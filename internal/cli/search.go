package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsort/search"
	"github.com/katalvlaran/lvsort/sorting"
)

const searchExample = `  # Binary search a sorted list; prints the index or -1
  lvsort search --algo binary --target 25 11 12 22 25 34 50

  # Search a rotated sorted list
  lvsort search --algo rotated --target 0 4 5 6 7 0 1 2`

func (c *Commands) newSearchCmd() *cobra.Command {
	var (
		algoName string
		target   int
	)
	cmd := &cobra.Command{
		Use:     "search --target N [values...]",
		Short:   "Find the index of a target value (-1 when absent)",
		Example: searchExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := search.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			// preconditions are not checked by the algorithms
			if algo.RequiresSorted() && algo != search.AlgoRotated && !sorting.IsSorted(values) {
				c.lggr.Warnw("input is not sorted ascending; the result is unspecified", "algo", algo.String())
			}

			idx, err := search.Search(values, target, algo)
			if err != nil {
				return err
			}
			c.lggr.Debugw("searched", "algo", algo.String(), "n", len(values), "target", target, "index", idx)
			fmt.Fprintln(cmd.OutOrStdout(), idx)

			return nil
		},
	}
	cmd.Flags().StringVarP(&algoName, "algo", "a", "binary", "Search algorithm (linear, binary, binary-recursive, interpolation, exponential, rotated)")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "Value to search for")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
