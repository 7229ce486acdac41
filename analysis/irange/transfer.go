package irange

import (
	"errors"
	"log"

	L "github.com/cs-au-dk/irange/analysis/lattice"
)

var (
	errUnsupportedOperation = errors.New("unsupported operation")
	errInternal             = errors.New("internal error")
)

// State binds every analyzable node of a graph to its interval.
type State = L.State[Node]

// binops maps arithmetic and comparison kinds to their interval operator.
var binops = map[Kind]func(L.Interval, L.Interval) L.Interval{
	Add: L.Add,
	Sub: L.Sub,
	Mul: L.Mul,
	Div: L.Div,
	Eq:  L.Eql,
	Ne:  L.Neq,
	Lt:  L.Lt,
	Gt:  L.Gt,
	Le:  L.Le,
	Ge:  L.Ge,
}

// Interval computes the interval of an operand in the given state.
// Literals are singletons, nodes are looked up, and unknown operands
// may take any value.
func (o Operand) Interval(s State) L.Interval {
	switch {
	case o.IsLiteral:
		return L.Singleton(o.Literal)
	case o.Node != nil:
		return s.Get(o.Node)
	}
	return L.Full()
}

// Transfer computes the interval of n from the intervals of its inputs in s.
// Panics if the kind of n is not supported.
func Transfer(n Node, s State) L.Interval {
	return transfer(n, s, nil)
}

// transfer is Transfer with optional tracing of merges.
func transfer(n Node, s State, logger *log.Logger) L.Interval {
	res := evaluate(n, s, logger)
	if b, ok := n.(Bounded); ok {
		if r, ok := b.Bounds(); ok && !res.Leq(r) {
			if logger != nil {
				logger.Printf("%s = %s wraps around, confined to %s\n", n.Name(), res, r)
			}
			return r
		}
	}
	return res
}

func evaluate(n Node, s State, logger *log.Logger) L.Interval {
	switch k := n.Kind(); k {
	case Merge:
		current := L.Empty()
		for i, in := range n.Incoming() {
			v := in.Interval(s)
			next := L.Lub(current, v)
			if logger != nil {
				logger.Printf("--> %s[%d] with lub(%s, %s) = %s\n", n.Name(), i, current, v, next)
			}
			current = next
		}
		return current

	case Select:
		ops := n.Operands()
		if len(ops) != 3 {
			panic(errInternal)
		}
		return L.Lub(ops[1].Interval(s), ops[2].Interval(s))

	case Alloc, Load, Call:
		return L.Full()

	default:
		op, ok := binops[k]
		if !ok {
			panic(errUnsupportedKind(n))
		}
		ops := n.Operands()
		if len(ops) != 2 {
			panic(errInternal)
		}
		l, r := ops[0].Interval(s), ops[1].Interval(s)
		if logger != nil && k.IsComparison() {
			logger.Printf("comparing %s and %s with %s\n", l, r, k)
		}
		return op(l, r)
	}
}
