package lattice

import (
	"math"
	"testing"
)

type (
	b = FiniteBound
	P = PlusInfinity
	M = MinusInfinity
)

var samples = []Interval{
	Empty(),
	Full(),
	Unit(),
	Singleton(0),
	Singleton(-3),
	IntervalFinite(-10, 10),
	IntervalFinite(2, 7),
	MakeInterval(M{}, b(0)),
	MakeInterval(b(5), P{}),
}

func TestLubLaws(t *testing.T) {
	for _, x := range samples {
		if res := Lub(x, x); res != x {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", x, x, res, x)
		}
		if res := Lub(Empty(), x); res != x {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", Empty(), x, res, x)
		}
		if res := Lub(Full(), x); res != Full() {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", Full(), x, res, Full())
		}

		for _, y := range samples {
			if xy, yx := Lub(x, y), Lub(y, x); xy != yx {
				t.Errorf("%s ⊔ %s = %s, but %s ⊔ %s = %s\n", x, y, xy, y, x, yx)
			}

			for _, z := range samples {
				l, r := Lub(Lub(x, y), z), Lub(x, Lub(y, z))
				if l != r {
					t.Errorf("(%s ⊔ %s) ⊔ %s = %s, but %s ⊔ (%s ⊔ %s) = %s\n",
						x, y, z, l, x, y, z, r)
				}
			}
		}
	}
}

func TestNeg(t *testing.T) {
	tests := []struct {
		i, expected Interval
	}{
		{Full(), Full()},
		{Empty(), Empty()},
		{IntervalFinite(1, 5), IntervalFinite(-5, -1)},
		{IntervalFinite(-2, 3), IntervalFinite(-3, 2)},
		{MakeInterval(b(5), P{}), MakeInterval(M{}, b(-5))},
		{IntervalFinite(math.MinInt64, 0), MakeInterval(b(0), P{})},
		{Singleton(math.MinInt64), MakeInterval(b(math.MaxInt64), P{})},
	}

	for _, test := range tests {
		if res := Neg(test.i); res != test.expected {
			t.Errorf("-%s = %s, expected %s\n", test.i, res, test.expected)
		}
	}

	for _, i := range samples {
		if i.IsBot() || i.IsTop() {
			continue
		}
		if res := Neg(Neg(i)); res != i {
			t.Errorf("-(-%s) = %s, expected %s\n", i, res, i)
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, expected Interval
	}{
		{IntervalFinite(1, 2), IntervalFinite(3, 4), IntervalFinite(4, 6)},
		{Singleton(5), Singleton(7), Singleton(12)},
		{Empty(), IntervalFinite(1, 2), Empty()},
		{IntervalFinite(1, 2), Empty(), Empty()},
		{Empty(), Full(), Empty()},
		{Full(), IntervalFinite(1, 2), Full()},
		{MakeInterval(b(0), P{}), Singleton(1), MakeInterval(b(1), P{})},
		{IntervalFinite(math.MaxInt64-1, math.MaxInt64), Singleton(1), MakeInterval(b(math.MaxInt64), P{})},
		{IntervalFinite(math.MinInt64, 0), Singleton(-1), MakeInterval(M{}, b(-1))},
		{Singleton(math.MaxInt64), IntervalFinite(1, 5), MakeInterval(b(math.MaxInt64), P{})},
		{Singleton(math.MinInt64), IntervalFinite(-5, -1), MakeInterval(M{}, b(math.MinInt64))},
	}

	for _, test := range tests {
		if res := Add(test.a, test.b); res != test.expected {
			t.Errorf("%s + %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b, expected Interval
	}{
		{IntervalFinite(5, 10), IntervalFinite(1, 2), IntervalFinite(3, 9)},
		{Singleton(0), Singleton(math.MinInt64), MakeInterval(b(math.MaxInt64), P{})},
		{Singleton(-2), Singleton(math.MaxInt64), MakeInterval(M{}, b(math.MinInt64))},
		{Empty(), Singleton(1), Empty()},
		{Singleton(1), Empty(), Empty()},
	}

	for _, test := range tests {
		if res := Sub(test.a, test.b); res != test.expected {
			t.Errorf("%s - %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, expected Interval
	}{
		{IntervalFinite(2, 3), IntervalFinite(4, 5), IntervalFinite(8, 15)},
		{IntervalFinite(-2, 3), IntervalFinite(4, 5), IntervalFinite(-10, 15)},
		{IntervalFinite(-2, -1), IntervalFinite(-3, -2), IntervalFinite(2, 6)},
		{Empty(), Singleton(2), Full()},
		{Singleton(2), Full(), Full()},
		{Singleton(math.MaxInt64), Singleton(2), MakeInterval(P{}, P{})},
		{Singleton(math.MinInt64), Singleton(2), MakeInterval(M{}, M{})},
		{Singleton(math.MinInt64), Singleton(-1), MakeInterval(P{}, P{})},
		{IntervalFinite(math.MaxInt64/2, math.MaxInt64), IntervalFinite(-2, 2), Full()},
		{MakeInterval(b(0), P{}), Singleton(0), Singleton(0)},
		{MakeInterval(b(1), P{}), Singleton(-1), MakeInterval(M{}, b(-1))},
	}

	for _, test := range tests {
		if res := Mul(test.a, test.b); res != test.expected {
			t.Errorf("%s * %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		}
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		a, b, expected Interval
	}{
		// Degenerate operands
		{Empty(), Singleton(1), Full()},
		{Singleton(1), Full(), Full()},
		{IntervalFinite(1, 10), Singleton(0), Full()},
		// Divisor straddling 0
		{IntervalFinite(-3, 5), IntervalFinite(-1, 1), IntervalFinite(-5, 5)},
		{IntervalFinite(-8, 2), IntervalFinite(-4, 9), IntervalFinite(-8, 8)},
		// Non-negative divisor
		{IntervalFinite(10, 20), IntervalFinite(2, 5), IntervalFinite(2, 10)},
		{IntervalFinite(-20, -10), IntervalFinite(2, 5), IntervalFinite(-10, -2)},
		{IntervalFinite(-20, 10), IntervalFinite(2, 5), IntervalFinite(-10, 5)},
		{IntervalFinite(10, 20), IntervalFinite(0, 5), IntervalFinite(2, 20)},
		// Non-positive divisor
		{IntervalFinite(10, 20), IntervalFinite(-5, -2), IntervalFinite(-10, -2)},
		{IntervalFinite(-20, -10), IntervalFinite(-5, -2), IntervalFinite(2, 10)},
		{IntervalFinite(-20, 10), IntervalFinite(-5, -2), IntervalFinite(-5, 10)},
		{IntervalFinite(10, 20), IntervalFinite(-5, 0), IntervalFinite(-20, -2)},
		// Infinite bounds
		{MakeInterval(b(1), P{}), IntervalFinite(2, 3), MakeInterval(b(0), P{})},
		{IntervalFinite(1, 5), MakeInterval(M{}, b(-1)), IntervalFinite(-5, 0)},
		// Uncovered sign combination
		{MakeInterval(b(5), b(-5)), IntervalFinite(1, 2), Full()},
	}

	for _, test := range tests {
		if res := Div(test.a, test.b); res != test.expected {
			t.Errorf("%s / %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		}
	}
}

func TestComparisons(t *testing.T) {
	ops := map[string]func(Interval, Interval) Interval{
		"==": Eql, "!=": Neq, "<": Lt, ">": Gt, "<=": Le, ">=": Ge,
	}

	for name, op := range ops {
		for _, x := range samples {
			for _, y := range samples {
				if res := op(x, y); res != Unit() {
					t.Errorf("%s %s %s = %s, expected %s\n", x, name, y, res, Unit())
				}
			}
		}
	}
}

func TestWiden(t *testing.T) {
	tests := []struct {
		i        Interval
		known    *Thresholds
		expected Interval
	}{
		{Singleton(44), NewThresholds(2, 42), MakeInterval(b(42), P{})},
		{Singleton(42), NewThresholds(2, 42), Singleton(42)},
		{IntervalFinite(3, 5), NewThresholds(2, 42), IntervalFinite(2, 42)},
		{IntervalFinite(-5, 1), NewThresholds(0, 2), MakeInterval(M{}, b(2))},
		{Empty(), NewThresholds(0, 2), Empty()},
		{Full(), NewThresholds(0, 2), Full()},
		{Singleton(7), NewThresholds(), Full()},
	}

	for _, test := range tests {
		if res := Widen(test.i, test.known); res != test.expected {
			t.Errorf("widen(%s, {%s}) = %s, expected %s\n", test.i, test.known, res, test.expected)
		}
	}
}
