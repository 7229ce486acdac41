package lattice

import (
	"math"
	"testing"
)

func TestBoundOrder(t *testing.T) {
	ordered := []IntervalBound{M{}, b(math.MinInt64), b(-1), b(0), b(7), b(math.MaxInt64), P{}}

	for i, x := range ordered {
		for j, y := range ordered {
			if res := x.Lt(y); res != (i < j) {
				t.Errorf("%s < %s = %v", x, y, res)
			}
			if res := x.Leq(y); res != (i <= j) {
				t.Errorf("%s ≤ %s = %v", x, y, res)
			}
			if res := x.Gt(y); res != (i > j) {
				t.Errorf("%s > %s = %v", x, y, res)
			}
			if res := x.Geq(y); res != (i >= j) {
				t.Errorf("%s ≥ %s = %v", x, y, res)
			}
			if res := x.Eq(y); res != (i == j) {
				t.Errorf("%s = %s is %v", x, y, res)
			}

			max, min := x, y
			if i < j {
				max, min = y, x
			}
			if res := x.Max(y); res != max {
				t.Errorf("max(%s, %s) = %s", x, y, res)
			}
			if res := x.Min(y); res != min {
				t.Errorf("min(%s, %s) = %s", x, y, res)
			}
		}
	}
}

func TestBoundSaturation(t *testing.T) {
	tests := []struct {
		name          string
		res, expected IntervalBound
	}{
		{"max + 1", b(math.MaxInt64).Plus(b(1)), P{}},
		{"min + -1", b(math.MinInt64).Plus(b(-1)), M{}},
		{"max * 2", b(math.MaxInt64).Mult(b(2)), P{}},
		{"max * -2", b(math.MaxInt64).Mult(b(-2)), M{}},
		{"min * -1", b(math.MinInt64).Mult(b(-1)), P{}},
		{"-min", b(math.MinInt64).Neg(), P{}},
		{"min / -1", b(math.MinInt64).Div(b(-1)), P{}},
		{"0 * inf", b(0).Mult(P{}), b(0)},
		{"-3 * inf", b(-3).Mult(P{}), M{}},
		{"-inf * -inf", M{}.Mult(M{}), P{}},
		{"5 / inf", b(5).Div(P{}), b(0)},
		{"-inf / -2", M{}.Div(b(-2)), P{}},
		{"-7 / 2", b(-7).Div(b(2)), b(-3)},
	}

	for _, test := range tests {
		if test.res != test.expected {
			t.Errorf("%s = %s, expected %s", test.name, test.res, test.expected)
		}
	}
}
