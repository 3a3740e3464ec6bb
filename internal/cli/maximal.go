package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyline/rectangle"
)

// maximalCommand creates the maximal command.
func (c *CLI) maximalCommand() *cobra.Command {
	var (
		file    string
		numeric bool
		show    bool
	)
	opts := rectangle.DefaultGridOptions()

	cmd := &cobra.Command{
		Use:   "maximal [rows...]",
		Short: "Largest all-filled rectangle in a binary matrix",
		Long: `Compute the largest all-filled rectangle in a binary matrix.

Rows are '0'/'1' strings given as arguments or one per line in --file.
With --numeric each line holds integers and cells >= --threshold are filled.
Blank lines and lines starting with '#' are ignored in files.`,
		Example: "  skyline maximal 10100 10111 11111 10010\n  skyline maximal --numeric --threshold 2 -f grid.txt --show",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputArgs(args, file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				c.Logger.Debug("no rows in input")
				fmt.Fprintln(cmd.OutOrStdout(), "area=0")
				return nil
			}
			g, err := buildGrid(lines, numeric, opts)
			if err != nil {
				return err
			}

			return c.runMaximal(cmd.Context(), cmd.OutOrStdout(), g, show)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read rows from file (\"-\" for stdin)")
	cmd.Flags().BoolVar(&numeric, "numeric", false, "rows are integers compared against --threshold")
	cmd.Flags().IntVar(&opts.FilledThreshold, "threshold", opts.FilledThreshold, "minimum value of a filled cell (with --numeric)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", opts.Workers, "goroutines evaluating row histograms")
	cmd.Flags().BoolVar(&show, "show", false, "print the grid with the rectangle marked '#'")

	return cmd
}

// buildGrid turns input lines into a Grid.
func buildGrid(lines []string, numeric bool, opts rectangle.GridOptions) (*rectangle.Grid, error) {
	if numeric {
		values, err := parseNumericGrid(lines)
		if err != nil {
			return nil, err
		}

		return rectangle.NewGrid(values, opts)
	}

	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, strings.Join(splitFields(l), ""))
	}

	return rectangle.FromStrings(rows, opts)
}

func (c *CLI) runMaximal(ctx context.Context, w io.Writer, g *rectangle.Grid, show bool) error {
	c.Logger.Debug("grid loaded", "rows", g.Height, "cols", g.Width, "workers", g.Workers())

	p := newProgress(c.Logger)
	r, err := g.MaximalRectangle(ctx)
	if err != nil {
		return err
	}
	p.done("maximal solved")

	if r.Empty() {
		fmt.Fprintln(w, "area=0")
	} else {
		fmt.Fprintf(w, "area=%d rows=%d..%d cols=%d..%d\n", r.Area, r.Top, r.Bottom, r.Left, r.Right)
	}
	if show {
		fmt.Fprint(w, renderGrid(g, r))
	}

	return nil
}

// renderGrid draws '#' for cells of r, '1' for other filled cells, '.' for empty.
func renderGrid(g *rectangle.Grid, r rectangle.Rect) string {
	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			switch {
			case r.Contains(row, col):
				b.WriteByte('#')
			case g.Filled(row, col):
				b.WriteByte('1')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
