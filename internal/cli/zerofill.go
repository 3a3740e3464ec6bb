package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyline/zerofill"
)

// zerofillCommand creates the zerofill command.
func (c *CLI) zerofillCommand() *cobra.Command {
	var (
		file string
		runs bool
	)

	cmd := &cobra.Command{
		Use:     "zerofill [nums...]",
		Short:   "Count zero-filled subarrays",
		Example: "  skyline zerofill 1 3 0 0 2 0 0 4",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := inputArgs(args, file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			nums, err := parseInts(raw)
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			count := zerofill.Count(nums)
			p.done("zerofill solved", "values", len(nums))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "count=%d\n", count)
			if runs {
				for _, r := range zerofill.Runs(nums) {
					fmt.Fprintf(out, "run start=%d length=%d subarrays=%d\n", r.Start, r.Length, r.Subarrays())
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read values from file (\"-\" for stdin)")
	cmd.Flags().BoolVar(&runs, "runs", false, "also list the zero runs")

	return cmd
}
