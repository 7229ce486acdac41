package lattice

import (
	"fmt"
	"math"
)

// Interval is an interval and a member of the interval lattice.
// Any interval consists two interval bounds, `low` and `high`.
//
// Intervals are compared structurally with ==. The bottom element
// is represented with swapped infinite bounds, [+∞, -∞].
type Interval struct {
	low  IntervalBound
	high IntervalBound
}

// MakeInterval creates the raw interval [low, high]. No normalization
// is performed.
func MakeInterval(low, high IntervalBound) Interval {
	return Interval{low: low, high: high}
}

// IntervalFinite creates the interval [low, high].
func IntervalFinite(low, high int64) Interval {
	return Interval{low: FiniteBound(low), high: FiniteBound(high)}
}

// Full is the top interval [-∞, +∞].
func Full() Interval {
	return Interval{low: MinusInfinity{}, high: PlusInfinity{}}
}

// Empty is the bottom interval [+∞, -∞].
func Empty() Interval {
	return Interval{low: PlusInfinity{}, high: MinusInfinity{}}
}

// Unit is the interval [0, 1] of boolean outcomes.
func Unit() Interval {
	return Interval{low: FiniteBound(0), high: FiniteBound(1)}
}

// Singleton creates the interval [v, v].
func Singleton(v int64) Interval {
	return Interval{low: FiniteBound(v), high: FiniteBound(v)}
}

// Lattice retrieves the interval lattice for any interval.
func (Interval) Lattice() *IntervalLattice {
	return intervalLattice
}

// String renders the interval as [L,U], where infinite bounds
// are printed as -inf and +inf.
func (e Interval) String() string {
	return "[" + e.low.String() + "," + e.high.String() + "]"
}

// Height returns the height of the interval in the interval lattice.
// The height is computed as the difference between the high and low bounds,
// if both are finite, or -1 otherwise:
//
//	[c1, c2] = c2 - c1, if c1, c2 ∈ ℤ
//	[c1, c2] = -1, if c1 = ±∞  v  c2 = ±∞
func (e Interval) Height() int {
	// Compromise: unknown intervals are represented as height -1
	l, lok := e.low.(FiniteBound)
	h, hok := e.high.(FiniteBound)
	if !(lok && hok) {
		return -1
	}
	return int(math.Max(0, float64(h)-float64(l)))
}

// IsBot checks that the interval is equal to ⊥ = [∞, -∞].
func (e Interval) IsBot() bool {
	return e == Empty()
}

// IsTop checks that the interval is equal to ⊤ = [-∞, ∞].
func (e Interval) IsTop() bool {
	return e == Full()
}

// Eq computes m = o. Interval equality is structural.
func (e1 Interval) Eq(e2 Interval) bool {
	return e1 == e2
}

// Leq computes m ⊑ o.
func (e1 Interval) Leq(e2 Interval) bool {
	if e1.IsBot() {
		return true
	}
	return e1.low.Geq(e2.low) && e1.high.Leq(e2.high)
}

// Geq computes m ⊒ o.
func (e1 Interval) Geq(e2 Interval) bool {
	return e2.Leq(e1)
}

// Join computes m ⊔ o.
func (e1 Interval) Join(e2 Interval) Interval {
	return Lub(e1, e2)
}

// Meet computes m ⊓ o.
// The resulting interval takes the highest of the lower bounds,
// and the lowest of the upper bounds. Disjoint intervals meet at ⊥.
func (e1 Interval) Meet(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return Empty()
	}
	low, high := e1.low.Max(e2.low), e1.high.Min(e2.high)
	if high.Lt(low) {
		return Empty()
	}
	return Interval{low: low, high: high}
}

// Lower returns the (possibly infinite) lower bound.
func (i Interval) Lower() IntervalBound {
	return i.low
}

// Upper returns the (possibly infinite) upper bound.
func (i Interval) Upper() IntervalBound {
	return i.high
}

// GetFiniteBounds unpacks the interval bounds, if finite, and panics otherwise.
func (i Interval) GetFiniteBounds() (int64, int64) {
	if i.low.IsInfinite() || i.high.IsInfinite() {
		panic(fmt.Sprintf("Interval %s does not have finite bounds", i))
	}
	return (int64)(i.low.(FiniteBound)), (int64)(i.high.(FiniteBound))
}

// Low return the lower bound as an integer, if finite, and panics otherwise.
func (i Interval) Low() int64 {
	if i.low.IsInfinite() {
		panic(fmt.Sprintf("Interval %s does not have finite lower bound", i))
	}
	return (int64)(i.low.(FiniteBound))
}

// High returns the upper bound as an integer, if finite, and panics otherwise.
func (i Interval) High() int64 {
	if i.high.IsInfinite() {
		panic(fmt.Sprintf("Interval %s does not have finite upper bound", i))
	}
	return (int64)(i.high.(FiniteBound))
}
