package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyline/internal/cases"
)

// ErrCasesFailed is returned by run when at least one case did not pass.
var ErrCasesFailed = errors.New("one or more cases failed")

// runCommand creates the run command for TOML case suites.
func (c *CLI) runCommand() *cobra.Command {
	var (
		workers   int
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "run <suite.toml>",
		Short: "Check a TOML case suite",
		Long: `Evaluate every case of a TOML suite and print a result table.

--workers and --threshold override the suite's [options] when given.
The command fails if any case fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := cases.Load(args[0])
			if err != nil {
				return fmt.Errorf("load suite: %w", err)
			}
			if cmd.Flags().Changed("workers") {
				suite.Options.Workers = workers
			}
			if cmd.Flags().Changed("threshold") {
				suite.Options.FilledThreshold = threshold
			}
			if err := suite.Validate(); err != nil {
				return err
			}
			c.Logger.Info("running suite", "path", args[0], "cases", suite.Len(), "workers", suite.Options.Workers)

			p := newProgress(c.Logger)
			results, err := cases.Run(cmd.Context(), suite)
			if err != nil {
				return err
			}
			p.done("suite finished")

			renderResults(cmd.OutOrStdout(), results)
			passed, failed := cases.Summarize(results)
			if failed > 0 {
				c.Logger.Error("suite failed", "passed", passed, "failed", failed)
				return fmt.Errorf("%d of %d: %w", failed, len(results), ErrCasesFailed)
			}
			c.Logger.Info("suite passed", "passed", passed)

			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "goroutines evaluating row histograms")
	cmd.Flags().IntVar(&threshold, "threshold", 1, "minimum value of a filled cell for numeric grids")

	return cmd
}

// renderResults writes a go-pretty table of results followed by a totals footer.
func renderResults(w io.Writer, results []cases.Result) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Kind", "Name", "Got", "Want", "Status", "Detail"})

	for _, r := range results {
		status := "PASS"
		detail := r.Detail
		switch {
		case r.Err != nil:
			status = "ERROR"
			detail = r.Err.Error()
		case !r.Pass():
			status = "FAIL"
		}
		tbl.AppendRow(table.Row{r.Kind, r.Name, r.Got, r.Want, status, detail})
	}

	passed, failed := cases.Summarize(results)
	tbl.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d passed", passed), fmt.Sprintf("%d failed", failed)})
	tbl.Render()
}
