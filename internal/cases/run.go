package cases

import (
	"context"
	"fmt"

	"github.com/katalvlaran/skyline/histogram"
	"github.com/katalvlaran/skyline/rectangle"
	"github.com/katalvlaran/skyline/zerofill"
)

// Case kinds as reported in Result.Kind.
const (
	KindHistogram = "histogram"
	KindMaximal   = "maximal"
	KindZeroFill  = "zerofill"
)

// Result is the outcome of one case.
type Result struct {
	Kind   string
	Name   string
	Got    int64
	Want   int64
	Detail string // where the answer lies, e.g. "bars 2..3 × 5"
	Err    error  // the case could not be evaluated
}

// Pass reports whether the case ran and matched its expectation.
func (r Result) Pass() bool { return r.Err == nil && r.Got == r.Want }

// Run evaluates every case of s in file order (histogram, maximal, zerofill).
// A case that cannot be evaluated is reported through Result.Err and does not
// stop the run. Cancellation of ctx stops the run and returns the results
// gathered so far together with ctx.Err().
func Run(ctx context.Context, s *Suite) ([]Result, error) {
	out := make([]Result, 0, s.Len())
	for _, c := range s.Histogram {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		out = append(out, runHistogram(c))
	}
	for _, c := range s.Maximal {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		res, err := runMaximal(ctx, c, s.Options)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	for _, c := range s.ZeroFill {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		out = append(out, runZeroFill(c))
	}

	return out, nil
}

// Summarize counts passing and failing results.
func Summarize(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Pass() {
			passed++
		} else {
			failed++
		}
	}

	return passed, failed
}

func runHistogram(c HistogramCase) Result {
	span := histogram.Largest(c.Heights)
	res := Result{Kind: KindHistogram, Name: c.Name, Got: int64(span.Area), Want: int64(c.Expect)}
	if span.Area > 0 {
		res.Detail = fmt.Sprintf("bars %d..%d × %d", span.Left, span.Right, span.Height)
	}

	return res
}

// runMaximal returns a non-nil error only for context cancellation.
func runMaximal(ctx context.Context, c MaximalCase, opts Options) (Result, error) {
	res := Result{Kind: KindMaximal, Name: c.Name, Want: int64(c.Expect)}
	gridOpts := rectangle.GridOptions{FilledThreshold: opts.FilledThreshold, Workers: opts.Workers}

	var (
		g   *rectangle.Grid
		err error
	)
	switch {
	case len(c.Values) > 0:
		g, err = rectangle.NewGrid(c.Values, gridOpts)
	case len(c.Rows) > 0:
		g, err = rectangle.FromStrings(c.Rows, gridOpts)
	default:
		res.Detail = "empty matrix"

		return res, nil
	}
	if err != nil {
		res.Err = err

		return res, nil
	}

	r, err := g.MaximalRectangle(ctx)
	if err != nil {
		return res, err
	}
	res.Got = int64(r.Area)
	if !r.Empty() {
		res.Detail = fmt.Sprintf("rows %d..%d cols %d..%d", r.Top, r.Bottom, r.Left, r.Right)
	}

	return res, nil
}

func runZeroFill(c ZeroFillCase) Result {
	return Result{
		Kind:   KindZeroFill,
		Name:   c.Name,
		Got:    zerofill.Count(c.Nums),
		Want:   c.Expect,
		Detail: fmt.Sprintf("%d zero runs", len(zerofill.Runs(c.Nums))),
	}
}
