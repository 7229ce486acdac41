package lattice

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Thresholds is the sorted set of known constants of a function, used
// as widening thresholds. The set always contains -∞ and +∞, which are
// kept implicitly at either end.
type Thresholds struct {
	finite []int64
}

// NewThresholds creates a threshold set containing the infinities and
// the given constants.
func NewThresholds(vs ...int64) *Thresholds {
	t := &Thresholds{}
	for _, v := range vs {
		t.Add(v)
	}
	return t
}

// Add inserts a constant into the set, preserving order.
// Adding a known constant is a no-op.
func (t *Thresholds) Add(v int64) {
	i := slices.IndexFunc(t.finite, func(w int64) bool { return w >= v })
	switch {
	case i == -1:
		t.finite = append(t.finite, v)
	case t.finite[i] != v:
		t.finite = slices.Insert(t.finite, i, v)
	}
}

// Contains checks whether the bound is a member of the set.
func (t *Thresholds) Contains(b IntervalBound) bool {
	if b, ok := b.(FiniteBound); ok {
		return slices.Contains(t.finite, int64(b))
	}
	return true
}

// Floor returns the greatest member of the set that is ≤ b.
func (t *Thresholds) Floor(b IntervalBound) IntervalBound {
	var res IntervalBound = MinusInfinity{}
	if b == (PlusInfinity{}) {
		return b
	}
	for _, v := range t.finite {
		if FiniteBound(v).Gt(b) {
			break
		}
		res = FiniteBound(v)
	}
	return res
}

// Ceil returns the least member of the set that is ≥ b.
func (t *Thresholds) Ceil(b IntervalBound) IntervalBound {
	if b == (MinusInfinity{}) {
		return b
	}
	for _, v := range t.finite {
		if FiniteBound(v).Geq(b) {
			return FiniteBound(v)
		}
	}
	return PlusInfinity{}
}

// Len is the number of members, including both infinities.
func (t *Thresholds) Len() int {
	return len(t.finite) + 2
}

// Values returns the finite members in ascending order.
func (t *Thresholds) Values() []int64 {
	return slices.Clone(t.finite)
}

// String renders the set in ascending order, e.g. -inf,2,42,+inf.
func (t *Thresholds) String() string {
	strs := make([]string, 0, t.Len())
	strs = append(strs, MinusInfinity{}.String())
	for _, v := range t.finite {
		strs = append(strs, FiniteBound(v).String())
	}
	strs = append(strs, PlusInfinity{}.String())
	return strings.Join(strs, ",")
}
