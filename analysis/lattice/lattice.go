// Package lattice implements the interval domain: extended integer bounds,
// intervals with their lattice operations and arithmetic, widening
// thresholds, and the abstract state mapping nodes to intervals.
package lattice

import (
	"github.com/cs-au-dk/irange/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Lattice func(...interface{}) string
}{
	Lattice: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
}

// IntervalLattice represents the interval lattice.
type IntervalLattice struct{}

// intervalLattice is a singleton instantiation of the interval lattice.
var intervalLattice = &IntervalLattice{}

// Intervals yields the interval lattice.
func Intervals() *IntervalLattice {
	return intervalLattice
}

// Top yields [-∞, +∞].
func (*IntervalLattice) Top() Interval {
	return Full()
}

// Bot yields [+∞, -∞].
func (*IntervalLattice) Bot() Interval {
	return Empty()
}

func (*IntervalLattice) String() string {
	return "[" + colorize.Lattice("ℤ") +
		", " + colorize.Lattice("ℤ") + "]"
}
