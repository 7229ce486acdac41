package lattice

import "math"

// Lub computes the least upper bound of two intervals.
// ⊤ is absorbing and ⊥ is the identity. Otherwise the result takes
// the lowest of the lower bounds and the highest of the upper bounds.
func Lub(a, b Interval) Interval {
	switch {
	case a.IsTop() || b.IsTop():
		return Full()
	case a.IsBot():
		return b
	}
	return Interval{
		low:  a.low.Min(b.low),
		high: a.high.Max(b.high),
	}
}

// Neg computes the unary negation of an interval.
// Bounds are negated and swapped, such that [l, u] becomes [-u, -l].
// This maps ⊤ to ⊤ and ⊥ to ⊥.
func Neg(i Interval) Interval {
	low := i.high.Neg()
	if !i.high.IsInfinite() {
		low = finiteLow(low)
	}
	return Interval{
		low:  low,
		high: i.low.Neg(),
	}
}

// finiteLow and finiteHigh keep a bound computed from finite operands
// on the side of the interval it belongs to. An overflowing lower bound
// becomes the largest integer rather than ∞, which would read as ⊥.
func finiteLow(b IntervalBound) IntervalBound {
	if b == (PlusInfinity{}) {
		return FiniteBound(math.MaxInt64)
	}
	return b
}

func finiteHigh(b IntervalBound) IntervalBound {
	if b == (MinusInfinity{}) {
		return FiniteBound(math.MinInt64)
	}
	return b
}

// Add computes the pointwise sum of two intervals.
// An ∞ lower bound (or -∞ upper bound) signals an empty operand,
// which makes the corresponding bound of the sum empty as well.
// Adding ⊥ to anything therefore yields ⊥.
func Add(a, b Interval) Interval {
	var low, high IntervalBound

	switch {
	case a.low == PlusInfinity{} || b.low == PlusInfinity{}:
		low = PlusInfinity{}
	case a.low == MinusInfinity{} || b.low == MinusInfinity{}:
		low = MinusInfinity{}
	default:
		low = finiteLow(a.low.Plus(b.low))
	}

	switch {
	case a.high == MinusInfinity{} || b.high == MinusInfinity{}:
		high = MinusInfinity{}
	case a.high == PlusInfinity{} || b.high == PlusInfinity{}:
		high = PlusInfinity{}
	default:
		high = finiteHigh(a.high.Plus(b.high))
	}

	return Interval{low: low, high: high}
}

// Sub computes a - b as a + (-b).
func Sub(a, b Interval) Interval {
	return Add(a, Neg(b))
}

// Mul computes the product of two intervals. No attempt at precision
// is made when either operand is ⊥ or ⊤, and the result is ⊤.
// Otherwise, the result spans the minimum and maximum of the
// four products of bounds. Products that overflow are replaced by
// the infinity in the direction of the overflow.
func Mul(a, b Interval) Interval {
	if a.IsBot() || b.IsBot() || a.IsTop() || b.IsTop() {
		return Full()
	}

	return spanOf(
		a.low.Mult(b.low),
		a.high.Mult(b.low),
		a.low.Mult(b.high),
		a.high.Mult(b.high),
	)
}

// Div computes the integer quotient a ÷ b.
//
// The result is ⊤ when either operand is ⊥ or ⊤, or when b = [0, 0].
// A divisor strictly straddling 0 produces [-m, m] where m is the
// largest magnitude among the bounds of a. A divisor bound equal to 0 is
// moved to the nearest non-zero value inside the divisor, after which the
// bounds are selected according to the signs of the dividend and divisor:
//
//	.-------------------------------------------.
//	| divisor | dividend          | result      |
//	|=========|===================|=============|
//	| lb ≥ 0  | la > 0, ua > 0    | [la/ub, ua/lb] |
//	| lb ≥ 0  | la ≤ 0, ua ≤ 0    | [la/lb, ua/ub] |
//	| lb ≥ 0  | la ≤ 0, ua > 0    | [la/lb, ua/lb] |
//	| ub ≤ 0  | la > 0, ua > 0    | [ua/ub, la/lb] |
//	| ub ≤ 0  | la ≤ 0, ua ≤ 0    | [ua/lb, la/ub] |
//	| ub ≤ 0  | la ≤ 0, ua > 0    | [ua/ub, la/ub] |
//	 -------------------------------------------
//
// Any other sign combination yields ⊤.
func Div(a, b Interval) Interval {
	if a.IsBot() || b.IsBot() || a.IsTop() || b.IsTop() {
		return Full()
	}

	zero := FiniteBound(0)
	if b.low.Lt(zero) && b.high.Gt(zero) {
		la, ua := abs(a.low), abs(a.high)
		return spanOf(la, ua, la.Neg(), ua.Neg())
	}

	if b.low == zero && b.high == zero {
		return Full()
	}
	if b.low == zero {
		b.low = FiniteBound(1)
	}
	if b.high == zero {
		b.high = FiniteBound(-1)
	}

	llowpos := a.low.Gt(zero)
	lhighpos := a.high.Gt(zero)

	if b.low.Geq(zero) {
		switch {
		case llowpos && lhighpos:
			return Interval{low: a.low.Div(b.high), high: a.high.Div(b.low)}
		case !llowpos && !lhighpos:
			return Interval{low: a.low.Div(b.low), high: a.high.Div(b.high)}
		case !llowpos && lhighpos:
			return Interval{low: a.low.Div(b.low), high: a.high.Div(b.low)}
		}
	}
	if b.high.Leq(zero) {
		switch {
		case llowpos && lhighpos:
			return Interval{low: a.high.Div(b.high), high: a.low.Div(b.low)}
		case !llowpos && !lhighpos:
			return Interval{low: a.high.Div(b.low), high: a.low.Div(b.high)}
		case !llowpos && lhighpos:
			return Interval{low: a.high.Div(b.high), high: a.low.Div(b.high)}
		}
	}

	return Full()
}

// Comparison operators are deliberately imprecise: the outcome of any
// comparison is some boolean, i.e., [0, 1].

// Eql abstracts a == b.
func Eql(a, b Interval) Interval { return Unit() }

// Neq abstracts a != b.
func Neq(a, b Interval) Interval { return Unit() }

// Lt abstracts a < b.
func Lt(a, b Interval) Interval { return Unit() }

// Gt abstracts a > b.
func Gt(a, b Interval) Interval { return Unit() }

// Le abstracts a <= b.
func Le(a, b Interval) Interval { return Unit() }

// Ge abstracts a >= b.
func Ge(a, b Interval) Interval { return Unit() }

// Widen snaps the bounds of an interval outwards to the nearest known
// constants: the lower bound becomes the greatest threshold below it,
// and the upper bound the least threshold above it. Because thresholds
// form a finite set, repeated widening can only produce finitely many
// distinct bounds.
func Widen(i Interval, known *Thresholds) Interval {
	return Interval{
		low:  known.Floor(i.low),
		high: known.Ceil(i.high),
	}
}

// abs computes the magnitude of a bound.
func abs(b IntervalBound) IntervalBound {
	if b.Sign() < 0 {
		return b.Neg()
	}
	return b
}

// spanOf constructs the smallest interval containing all the given bounds.
func spanOf(b IntervalBound, bs ...IntervalBound) Interval {
	low, high := b, b
	for _, b := range bs {
		low, high = low.Min(b), high.Max(b)
	}
	return Interval{low: low, high: high}
}
