package utils

import (
	"fmt"
	"os"
	"path"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the contents of a YAML configuration file.
// Fields missing from the file keep their default value.
type Config struct {
	// Functions is a list of regular expressions over fully qualified
	// function names. Only matching functions are analyzed. An empty
	// list matches every function.
	Functions []string `yaml:"functions"`

	// Thresholds are additional widening thresholds, added to the
	// constants found in each function.
	Thresholds []int64 `yaml:"thresholds"`

	// Parallel is the maximum number of functions analyzed concurrently.
	Parallel int `yaml:"parallel"`

	// Debug enables tracing of the fixpoint computation.
	Debug bool `yaml:"debug"`

	// DotDir is the directory in which the dot task stores its output.
	// Relative paths are resolved against the configuration file.
	DotDir string `yaml:"dot-dir"`

	sourceFile      string
	functionRegexes []*regexp.Regexp
}

// NewDefaultConfig returns an empty default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Functions:  nil,
		Thresholds: nil,
		Parallel:   0,
		Debug:      false,
		DotDir:     "",
	}
}

// LoadConfig reads a configuration from a file.
func LoadConfig(filename string) (*Config, error) {
	cfg := NewDefaultConfig()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file %s: %w", filename, err)
	}

	cfg.sourceFile = filename

	for _, f := range cfg.Functions {
		r, err := regexp.Compile(f)
		if err != nil {
			return nil, fmt.Errorf("invalid function filter %q: %w", f, err)
		}
		cfg.functionRegexes = append(cfg.functionRegexes, r)
	}

	if cfg.DotDir != "" && !path.IsAbs(cfg.DotDir) {
		cfg.DotDir = cfg.RelPath(cfg.DotDir)
	}

	if cfg.Parallel < 0 {
		return nil, fmt.Errorf("parallel must be non-negative, got %d", cfg.Parallel)
	}

	return cfg, nil
}

// RelPath returns filename path relative to the config source file.
func (c *Config) RelPath(filename string) string {
	return path.Join(path.Dir(c.sourceFile), filename)
}

// MatchFunction checks whether the fully qualified function name matches
// one of the function filters. Without filters, every function matches.
func (c *Config) MatchFunction(name string) bool {
	if len(c.functionRegexes) == 0 {
		return true
	}
	for _, r := range c.functionRegexes {
		if r.MatchString(name) {
			return true
		}
	}
	return false
}
