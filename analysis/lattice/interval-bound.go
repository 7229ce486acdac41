package lattice

import (
	"math"
	"strconv"
)

// IntervalBound is an interface implemented by all interval lattice bounds i.e.,
// any FiniteBound value, PlusInfinity and MinusInfinity.
//
// Finite arithmetic is performed on 64-bit integers. Results that leave the
// representable range saturate to the infinity in the direction of the overflow.
type IntervalBound interface {
	String() string

	// IsInfinite checks whether the interval bound is finite.
	IsInfinite() bool
	// Sign returns -1, 0 or 1. Infinities have the sign of their direction.
	Sign() int

	// BINARY RELATIONS

	// Eq checks for interval bound equality.
	Eq(IntervalBound) bool
	// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℤ.
	Leq(IntervalBound) bool
	// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℤ.
	Geq(IntervalBound) bool
	// Lt computes b1 < b2. The semantics is -∞ < c < ∞, where c ∈ ℤ.
	Lt(IntervalBound) bool
	// Gt computes b1 > b2. The semantics is -∞ < c < ∞, where c ∈ ℤ.
	Gt(IntervalBound) bool

	// UNARY OPERATIONS

	// Neg computes -b. The semantics of negation is:
	//	.----------------.
	// 	|   b    |  -b   |
	// 	|========|=======|
	// 	|  ∈  ℤ  |  -b   |
	// 	|--------|-------|
	// 	|  min64 |   ∞   |
	// 	|--------|-------|
	// 	|    ∞   |  -∞   |
	// 	|--------|-------|
	// 	|   -∞   |   ∞   |
	// 	 ----------------
	Neg() IntervalBound

	// BINARY OPERATIONS

	// Plus computes b1 + b2. The semantics of plus is:
	//	.-----------------------------.
	// 	|   b1   |   b2   |  b1 ⨣ b2  |
	// 	|========|========|===========|
	// 	|  ∈  ℤ  |  ∈  ℤ  |  b1 + b2  |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ  |    ∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ  |   -∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|   -∞   |   -∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |    ∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |   -∞   |   panic   |
	// 	 -----------------------------
	Plus(IntervalBound) IntervalBound

	// Mult computes b1 * b2. Zero absorbs infinities, otherwise the
	// result has the sign of the exact product.
	Mult(IntervalBound) IntervalBound

	// Div computes b1 / b2, truncating towards zero. Finite values divided
	// by an infinity are 0; infinities keep their magnitude.
	Div(IntervalBound) IntervalBound

	// Max computes max(b1, b2).
	Max(IntervalBound) IntervalBound
	// Min computes min(b1, b2).
	Min(IntervalBound) IntervalBound
}

type (
	// FiniteBound is used to represent finite limits of an interval value.
	FiniteBound int64
	// PlusInfinity represents ∞.
	PlusInfinity struct{}
	// MinusInfinity represents -∞.
	MinusInfinity struct{}
)

// infinity returns the infinite bound with the given sign.
func infinity(sign int) IntervalBound {
	if sign < 0 {
		return MinusInfinity{}
	}
	return PlusInfinity{}
}

// rank orders the kinds of bounds: -∞, then ℤ, then ∞.
func rank(b IntervalBound) int {
	switch b.(type) {
	case MinusInfinity:
		return -1
	case PlusInfinity:
		return 1
	}
	return 0
}

// compare returns -1, 0 or 1 if b1 is less than, equal to or greater than b2.
func compare(b1, b2 IntervalBound) int {
	r1, r2 := rank(b1), rank(b2)
	switch {
	case r1 < r2:
		return -1
	case r1 > r2:
		return 1
	case r1 != 0:
		return 0
	}

	f1, f2 := b1.(FiniteBound), b2.(FiniteBound)
	switch {
	case f1 < f2:
		return -1
	case f1 > f2:
		return 1
	}
	return 0
}

// max2 and min2 implement Max and Min for every kind of bound.
func max2(b1, b2 IntervalBound) IntervalBound {
	if compare(b1, b2) < 0 {
		return b2
	}
	return b1
}

func min2(b1, b2 IntervalBound) IntervalBound {
	if compare(b1, b2) > 0 {
		return b2
	}
	return b1
}

// IsInfinite is false for the finite bound.
func (FiniteBound) IsInfinite() bool {
	return false
}

func (b FiniteBound) Sign() int {
	switch {
	case b < 0:
		return -1
	case b > 0:
		return 1
	}
	return 0
}

func (b FiniteBound) String() string {
	return strconv.FormatInt(int64(b), 10)
}

func (b1 FiniteBound) Eq(b2 IntervalBound) bool  { return compare(b1, b2) == 0 }
func (b1 FiniteBound) Leq(b2 IntervalBound) bool { return compare(b1, b2) <= 0 }
func (b1 FiniteBound) Geq(b2 IntervalBound) bool { return compare(b1, b2) >= 0 }
func (b1 FiniteBound) Lt(b2 IntervalBound) bool  { return compare(b1, b2) < 0 }
func (b1 FiniteBound) Gt(b2 IntervalBound) bool  { return compare(b1, b2) > 0 }

// Neg computes -b. Negating the smallest 64-bit integer overflows to ∞.
func (b FiniteBound) Neg() IntervalBound {
	if b == math.MinInt64 {
		return PlusInfinity{}
	}
	return -b
}

// Plus computes b1 + b2, saturating on overflow.
func (b1 FiniteBound) Plus(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		s := b1 + b2
		switch {
		case b2 > 0 && s < b1:
			return PlusInfinity{}
		case b2 < 0 && s > b1:
			return MinusInfinity{}
		}
		return s
	case PlusInfinity:
		return PlusInfinity{}
	case MinusInfinity:
		return MinusInfinity{}
	}
	return nil
}

// Mult computes b1 * b2. Overflowing products are replaced by
// the infinity matching the sign of the exact product.
func (b1 FiniteBound) Mult(b2 IntervalBound) IntervalBound {
	if b1 == 0 {
		return b1
	}
	switch b2 := b2.(type) {
	case FiniteBound:
		if b2 == 0 {
			return b2
		}
		p := b1 * b2
		if p/b2 != b1 ||
			(b1 == -1 && b2 == math.MinInt64) ||
			(b2 == -1 && b1 == math.MinInt64) {
			return infinity(b1.Sign() * b2.Sign())
		}
		return p
	case PlusInfinity, MinusInfinity:
		return infinity(b1.Sign() * b2.Sign())
	}
	return nil
}

// Div computes b1 / b2.
//
//	.-----------------------------.
//	|   b1   |   b2   |  b1 / b2  |
//	|========|========|===========|
//	|  ∈  ℤ  |  ∈ ℤ≠0 |  b1 / b2  |
//	|--------|--------|-----------|
//	|  min64 |   -1   |     ∞     |
//	|--------|--------|-----------|
//	|  ∈  ℤ  |  (-)∞  |     0     |
//	|--------|--------|-----------|
//	|  ∈ ℤ≠0 |    0   |   (-)∞    |
//	|--------|--------|-----------|
//	|    0   |    0   |   panic   |
//	 -----------------------------
func (b1 FiniteBound) Div(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		switch {
		case b2 == 0 && b1 > 0:
			return PlusInfinity{}
		case b2 == 0 && b1 < 0:
			return MinusInfinity{}
		case b1 == 0 && b2 == 0:
			panic("0 / 0")
		case b1 == math.MinInt64 && b2 == -1:
			return PlusInfinity{}
		}
		return b1 / b2
	case PlusInfinity, MinusInfinity:
		return FiniteBound(0)
	}
	return nil
}

func (b1 FiniteBound) Max(b2 IntervalBound) IntervalBound { return max2(b1, b2) }
func (b1 FiniteBound) Min(b2 IntervalBound) IntervalBound { return min2(b1, b2) }

// IsInfinite is true for ∞.
func (PlusInfinity) IsInfinite() bool {
	return true
}

func (PlusInfinity) Sign() int {
	return 1
}

func (PlusInfinity) String() string {
	return "+inf"
}

func (b1 PlusInfinity) Eq(b2 IntervalBound) bool  { return compare(b1, b2) == 0 }
func (b1 PlusInfinity) Leq(b2 IntervalBound) bool { return compare(b1, b2) <= 0 }
func (b1 PlusInfinity) Geq(b2 IntervalBound) bool { return compare(b1, b2) >= 0 }
func (b1 PlusInfinity) Lt(b2 IntervalBound) bool  { return compare(b1, b2) < 0 }
func (b1 PlusInfinity) Gt(b2 IntervalBound) bool  { return compare(b1, b2) > 0 }

func (PlusInfinity) Neg() IntervalBound {
	return MinusInfinity{}
}

// Plus computes ∞ + b.
func (PlusInfinity) Plus(b2 IntervalBound) IntervalBound {
	switch b2.(type) {
	case MinusInfinity:
		panic("∞ + -∞")
	}
	return PlusInfinity{}
}

// Mult computes ∞ * b. Multiplying with 0 yields 0.
func (PlusInfinity) Mult(b2 IntervalBound) IntervalBound {
	if b2.Sign() == 0 {
		return FiniteBound(0)
	}
	return infinity(b2.Sign())
}

// Div computes ∞ / b.
func (PlusInfinity) Div(b2 IntervalBound) IntervalBound {
	if b2.Sign() < 0 {
		return MinusInfinity{}
	}
	return PlusInfinity{}
}

func (b1 PlusInfinity) Max(b2 IntervalBound) IntervalBound { return max2(b1, b2) }
func (b1 PlusInfinity) Min(b2 IntervalBound) IntervalBound { return min2(b1, b2) }

// IsInfinite is true for -∞.
func (MinusInfinity) IsInfinite() bool {
	return true
}

func (MinusInfinity) Sign() int {
	return -1
}

func (MinusInfinity) String() string {
	return "-inf"
}

func (b1 MinusInfinity) Eq(b2 IntervalBound) bool  { return compare(b1, b2) == 0 }
func (b1 MinusInfinity) Leq(b2 IntervalBound) bool { return compare(b1, b2) <= 0 }
func (b1 MinusInfinity) Geq(b2 IntervalBound) bool { return compare(b1, b2) >= 0 }
func (b1 MinusInfinity) Lt(b2 IntervalBound) bool  { return compare(b1, b2) < 0 }
func (b1 MinusInfinity) Gt(b2 IntervalBound) bool  { return compare(b1, b2) > 0 }

func (MinusInfinity) Neg() IntervalBound {
	return PlusInfinity{}
}

// Plus computes -∞ + b.
func (MinusInfinity) Plus(b IntervalBound) IntervalBound {
	switch b.(type) {
	case PlusInfinity:
		panic("-∞ + ∞")
	}
	return MinusInfinity{}
}

// Mult computes -∞ * b. Multiplying with 0 yields 0.
func (MinusInfinity) Mult(b IntervalBound) IntervalBound {
	if b.Sign() == 0 {
		return FiniteBound(0)
	}
	return infinity(-b.Sign())
}

// Div computes -∞ / b.
func (MinusInfinity) Div(b IntervalBound) IntervalBound {
	if b.Sign() < 0 {
		return PlusInfinity{}
	}
	return MinusInfinity{}
}

func (b1 MinusInfinity) Max(b2 IntervalBound) IntervalBound { return max2(b1, b2) }
func (b1 MinusInfinity) Min(b2 IntervalBound) IntervalBound { return min2(b1, b2) }
