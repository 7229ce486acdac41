package main

import (
	"context"
	"log"
	"os"

	"github.com/cs-au-dk/irange/analysis/irange/ssagraph"
	"github.com/cs-au-dk/irange/pkgutil"
	"github.com/cs-au-dk/irange/utils"

	"golang.org/x/tools/go/ssa"
)

var (
	opts = utils.Opts()
	task = opts.Task()
)

// loadSSA builds the SSA packages targeted by the command line,
// either a single source file given with -src, or a package pattern.
func loadSSA() ([]*ssa.Package, error) {
	if src := opts.Src(); src != "" {
		contents, err := os.ReadFile(src)
		if err != nil {
			return nil, err
		}
		pkg, err := ssagraph.BuildFile(src, string(contents))
		if err != nil {
			return nil, err
		}
		return []*ssa.Package{pkg}, nil
	}

	pkgs, err := pkgutil.LoadPackages(pkgutil.LoadConfig{
		GoPath:       opts.GoPath(),
		ModulePath:   opts.ModulePath(),
		IncludeTests: opts.IncludeTests(),
	}, utils.MakePath())
	if err != nil {
		return nil, err
	}

	_, spkgs := pkgutil.BuildSSA(pkgs)
	return spkgs, nil
}

func main() {
	utils.ParseArgs()

	log.Println("Loading packages...")
	pkgs, err := loadSSA()
	if err != nil {
		log.Println("Failed to load packages")
		log.Println(err)
		os.Exit(1)
	}

	pl, err := newPipeline(pkgs, opts.Config())
	if err != nil {
		log.Fatalln(err)
	}

	if len(pl.funs) == 0 {
		log.Println("No functions matched", opts.Function())
		return
	}
	log.Printf("Analyzing %d functions", len(pl.funs))

	outcomes, err := pl.analyze(context.Background())
	if err != nil {
		log.Fatalln(err)
	}

	failed := pl.report(os.Stdout, outcomes)
	gatherMetrics(outcomes)

	if failed > 0 {
		log.Printf("Analysis failed for %d of %d functions", failed, len(outcomes))
		os.Exit(1)
	}
}
