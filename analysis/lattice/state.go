package lattice

import (
	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/irange/utils"
)

// State is an abstract state binding program nodes to intervals.
// The underlying map is persistent, so updates produce a new state
// and previous states remain valid snapshots.
//
// Keys are compared by pointer identity.
type State[K any] struct {
	mp *immutable.Map[K, Interval]
}

// NewState creates an empty abstract state.
func NewState[K any]() State[K] {
	return State[K]{immutable.NewMap[K, Interval](utils.PointerHasher[K]{})}
}

// Get retrieves the interval bound to k. Unbound keys are ⊥.
func (s State[K]) Get(k K) Interval {
	if v, found := s.mp.Get(k); found {
		return v
	}
	return Empty()
}

// Lookup retrieves the interval bound to k, and whether k is bound.
func (s State[K]) Lookup(k K) (Interval, bool) {
	return s.mp.Get(k)
}

// Has checks whether k is bound in the state.
func (s State[K]) Has(k K) bool {
	_, found := s.mp.Get(k)
	return found
}

// Update binds k to v in a new state.
func (s State[K]) Update(k K, v Interval) State[K] {
	return State[K]{s.mp.Set(k, v)}
}

// Len is the number of bound keys.
func (s State[K]) Len() int {
	return s.mp.Len()
}

// ForEach applies the given function to every binding. Iteration order
// is unspecified.
func (s State[K]) ForEach(do func(K, Interval)) {
	for iter := s.mp.Iterator(); !iter.Done(); {
		k, v, _ := iter.Next()
		do(k, v)
	}
}

// Eq checks that both states bind the same keys to equal intervals.
func (s State[K]) Eq(o State[K]) bool {
	if s.mp == o.mp {
		return true
	}
	if s.Len() != o.Len() {
		return false
	}
	for iter := s.mp.Iterator(); !iter.Done(); {
		k, v, _ := iter.Next()
		if w, found := o.mp.Get(k); !found || v != w {
			return false
		}
	}
	return true
}
