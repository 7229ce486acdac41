package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	function     string
	outputFormat string
	gopath       string
	modulePath   string
	task         string
	config       string
	src          string
	dotDir       string
	parallel     int
	debug        bool
	metrics      bool
	noColorize   bool
	verbose      bool
	includeTests bool

	// Populated from the configuration file, if any.
	cfg *Config
}

const (
	_RANGES = iota
	_KNOWN_INTS
	_DOT
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"ranges",
	"Compute and print the interval of every integer-valued instruction",
}, {
	"known-ints",
	"Print the integer constants used as widening thresholds for each function",
}, {
	"dot",
	"Export the def-use graph of each function, annotated with intervals, to DOT and render it",
}}

var opts = &options{cfg: NewDefaultConfig()}

type optInterface struct{}

type taskInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}
func (optInterface) Function() string {
	return opts.function
}
func (optInterface) OutputFormat() string {
	return opts.outputFormat
}
func (optInterface) GoPath() string {
	return opts.gopath
}
func (optInterface) ModulePath() string {
	return opts.modulePath
}
func (optInterface) IncludeTests() bool {
	return opts.includeTests
}

// Debug enables tracing of the fixpoint computation.
func (optInterface) Debug() bool {
	return opts.debug
}
func (optInterface) Metrics() bool {
	return opts.metrics
}
func (optInterface) Verbose() bool {
	return opts.verbose
}

// Parallel is the maximum number of functions analyzed concurrently.
func (optInterface) Parallel() int {
	if opts.parallel < 1 {
		return 1
	}
	return opts.parallel
}

// Src is a path to a single Go source file to analyze, instead of a package.
func (optInterface) Src() string {
	return opts.src
}
func (optInterface) DotDir() string {
	return opts.dotDir
}

// Config is the loaded configuration file, or the default configuration.
func (optInterface) Config() *Config {
	return opts.cfg
}

func (optInterface) Task() taskInterface {
	return taskInterface{}
}
func (taskInterface) IsRanges() bool {
	return opts.task == task[_RANGES].flag
}
func (taskInterface) IsKnownInts() bool {
	return opts.task == task[_KNOWN_INTS].flag
}
func (taskInterface) IsDot() bool {
	return opts.task == task[_DOT].flag
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"

	flag.StringVar(&(opts.function), "fun", ".", "target specific functions w. r. t. the given task.\n"+
		"- The value is a regular expression matched against fully qualified function names.\n"+
		"- Use '.' to analyze all functions of the loaded packages.\n")
	flag.StringVar(&(opts.outputFormat), "format", "svg", "output file format for the dot task [svg | png | jpg | ...]")
	flag.StringVar(&(opts.gopath), "gopath", ".", "specify GOPATH to be used for packages.Load")
	flag.StringVar(&(opts.modulePath), "modulepath", "", `specify a path to a directory containing a Go module.
- If provided this will make our code loading tools (that piggyback on Go's tools) run
in "module-aware" mode (GO111MODULE=on).`)
	flag.StringVar(&(opts.task), "task", task[_RANGES].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.StringVar(&(opts.config), "config", "", "path to a YAML configuration file")
	flag.StringVar(&(opts.src), "src", "", "analyze a single Go source file instead of a package")
	flag.StringVar(&(opts.dotDir), "dot-dir", "_debug", "directory in which the dot task stores its output")
	flag.IntVar(&(opts.parallel), "parallel", 1, "number of functions analyzed concurrently")
	flag.BoolVar(&(opts.debug), "debug", false, "Enable logging of the fixpoint computation")
	flag.BoolVar(&(opts.metrics), "metrics", false, "Enable collection of performance metrics for the analysis")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")
	flag.BoolVar(&(opts.includeTests), "include-tests", false, "include test files in the analysis.")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()

	validTask := false
	for _, task := range task {
		if task.flag == opts.task {
			validTask = true
			break
		}
	}

	if !validTask {
		log.Fatalf("Value \"%s\" is not valid for -task", opts.task)
	}

	if opts.config != "" {
		cfg, err := LoadConfig(opts.config)
		if err != nil {
			log.Fatalln(err)
		}

		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		applyConfig(opts, cfg, set)
	}

	if Opts().Task().IsDot() {
		opts.noColorize = true
	}
}

// applyConfig copies the values of the configuration file into the options,
// except for options that were explicitly given on the command line.
func applyConfig(o *options, cfg *Config, set map[string]bool) {
	o.cfg = cfg
	if !set["parallel"] && cfg.Parallel > 0 {
		o.parallel = cfg.Parallel
	}
	if !set["debug"] && cfg.Debug {
		o.debug = true
	}
	if !set["dot-dir"] && cfg.DotDir != "" {
		o.dotDir = cfg.DotDir
	}
}

func (optInterface) AnalyzeAllFuncs() bool {
	return opts.function == "."
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}
