package utils

import "flag"

// MakePath returns the package pattern to analyze.
// The first non-flag argument is the target package.
// If no path is provided, it defaults to every package below the
// current directory.
func MakePath() string {
	if args := flag.Args(); len(args) >= 1 {
		return args[0]
	}
	return "./..."
}
