package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyline/histogram"
)

// histogramCommand creates the histogram command.
func (c *CLI) histogramCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "histogram [heights...]",
		Short: "Largest rectangle under a histogram",
		Long: `Compute the largest rectangle under a histogram of unit-width bars.

Heights are given as arguments (space or comma separated) or read from a file
with --file ("-" for stdin).`,
		Example: "  skyline histogram 2 1 5 6 2 3\n  skyline histogram 2,4",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := inputArgs(args, file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			heights, err := parseInts(raw)
			if err != nil {
				return err
			}
			if err := histogram.Validate(heights); err != nil {
				return err
			}

			p := newProgress(c.Logger)
			span := histogram.Largest(heights)
			p.done("histogram solved", "bars", len(heights))

			if span.Area == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "area=0")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "area=%d bars=%d..%d height=%d\n",
				span.Area, span.Left, span.Right, span.Height)

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read heights from file (\"-\" for stdin)")

	return cmd
}
