package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"regexp"

	"github.com/cs-au-dk/irange/analysis/irange"
	"github.com/cs-au-dk/irange/analysis/irange/ssagraph"
	"github.com/cs-au-dk/irange/pkgutil"
	"github.com/cs-au-dk/irange/utils"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/ssa"
)

// pipeline is a wrapper around the analysis pipeline.
type pipeline struct {
	funs []*ssa.Function
	conf irange.Config
}

// outcome of analyzing a single function.
type outcome struct {
	fun   *ssa.Function
	res   *irange.Result
	image string
	err   error
}

// newPipeline selects the functions of the given packages matched
// by both the -fun flag and the configuration file.
func newPipeline(pkgs []*ssa.Package, cfg *utils.Config) (*pipeline, error) {
	if cfg == nil {
		cfg = utils.NewDefaultConfig()
	}

	match := cfg.MatchFunction
	if !opts.AnalyzeAllFuncs() {
		r, err := regexp.Compile(opts.Function())
		if err != nil {
			return nil, fmt.Errorf("invalid value for -fun: %w", err)
		}
		match = func(name string) bool {
			return r.MatchString(name) && cfg.MatchFunction(name)
		}
	}

	funs := pkgutil.SelectFunctions(pkgs, match)

	opts.OnVerbose(func() {
		fmt.Println("Selected functions:")
		for _, fun := range funs {
			fmt.Println(fun, "at", fun.Prog.Fset.Position(fun.Pos()))
		}
	})

	return &pipeline{
		funs: funs,
		conf: irange.Config{
			Log:        opts.Debug(),
			Metrics:    opts.Metrics(),
			Thresholds: cfg.Thresholds,
		},
	}, nil
}

// analyze runs the analysis of every selected function, at most
// opts.Parallel() at a time. Analysis failures are recorded in the
// outcome of the function. Only failing to export a dot graph aborts
// the remaining analyses.
func (pl *pipeline) analyze(ctx context.Context) ([]outcome, error) {
	outcomes := make([]outcome, len(pl.funs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel())

	for i, fun := range pl.funs {
		i, fun := i, fun
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out := &outcomes[i]
			out.fun = fun
			if opts.Debug() {
				log.Println("Analyzing", fun)
			}

			out.res, out.err = pl.conf.TryAnalyze(ssagraph.New(fun))
			if out.err != nil || !task.IsDot() {
				return nil
			}

			image, err := out.res.ExportDot(opts.DotDir(), opts.OutputFormat())
			if err != nil {
				return fmt.Errorf("could not export %s: %w", fun, err)
			}
			out.image = image
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// report writes the outcomes of the task in the order in which the
// functions were selected. It returns the number of failed analyses.
func (pl *pipeline) report(w io.Writer, outcomes []outcome) (failed int) {
	for _, out := range outcomes {
		if out.err != nil {
			failed++
			log.Println(color.RedString("Aborted!"), out.err)
			continue
		}

		var err error
		switch {
		case task.IsRanges():
			err = out.res.ReportColorized(w)
		case task.IsKnownInts():
			err = out.res.ReportKnownInts(w)
		case task.IsDot():
			_, err = fmt.Fprintln(w, out.image)
		}
		if err != nil {
			log.Fatalln(err)
		}
	}
	return
}
