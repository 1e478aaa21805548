package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsort/search"
	"github.com/katalvlaran/lvsort/sorting"
)

func (c *Commands) newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "algorithms",
		Aliases: []string{"algos", "ls"},
		Short:   "List the available algorithms with their complexity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SORT\tBEST\tAVERAGE\tWORST\tSPACE\tSTABLE")
			for _, a := range sorting.Algorithms() {
				cx := a.Complexity()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n", a, cx.Best, cx.Average, cx.Worst, cx.Space, a.Stable())
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "SEARCH\tTIME\tNEEDS SORTED INPUT\t\t\t")
			for _, a := range search.Algorithms() {
				fmt.Fprintf(tw, "%s\t%s\t%t\t\t\t\n", a, a.Complexity(), a.RequiresSorted())
			}

			return tw.Flush()
		},
	}
}
