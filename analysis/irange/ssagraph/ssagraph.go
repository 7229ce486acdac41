// Package ssagraph exposes go/ssa functions as program graphs
// for the interval range analysis.
package ssagraph

import (
	"go/constant"
	"go/token"
	"go/types"
	"math"

	"github.com/cs-au-dk/irange/analysis/irange"
	L "github.com/cs-au-dk/irange/analysis/lattice"

	"golang.org/x/tools/go/ssa"
)

// Graph is the def-use graph of the integer computations of an SSA function.
type Graph struct {
	fun   *ssa.Function
	nodes []irange.Node
	index map[ssa.Value]*Node
}

// Node wraps a value-producing SSA instruction.
type Node struct {
	g     *Graph
	value ssa.Value
	kind  irange.Kind
}

var (
	_ irange.Graph   = (*Graph)(nil)
	_ irange.Node    = (*Node)(nil)
	_ irange.Bounded = (*Node)(nil)
)

// New constructs the graph of fn. Instructions without an analyzable
// kind are omitted.
func New(fn *ssa.Function) *Graph {
	g := &Graph{
		fun:   fn,
		index: make(map[ssa.Value]*Node),
	}

	for _, b := range fn.Blocks {
		for _, insn := range b.Instrs {
			v, ok := insn.(ssa.Value)
			if !ok {
				continue
			}
			if k := Classify(v); k.Supported() {
				n := &Node{g: g, value: v, kind: k}
				g.index[v] = n
				g.nodes = append(g.nodes, n)
			}
		}
	}

	return g
}

// Classify determines the kind of an SSA value.
//
//	.-------------------------------------------------.
//	| instruction                         | kind      |
//	|=====================================|===========|
//	| φ of integer type                   | Merge     |
//	| + - * on integers                   | Add..Mul  |
//	| / on signed integers                | Div       |
//	| == != < > <= >= on integer operands | Eq..Ge    |
//	| new/local allocation                | Alloc     |
//	| *x                                  | Load      |
//	| function call                       | Call      |
//	 -------------------------------------------------
//
// Anything else is Unsupported.
func Classify(v ssa.Value) irange.Kind {
	switch v := v.(type) {
	case *ssa.Phi:
		if isInteger(v.Type()) {
			return irange.Merge
		}
	case *ssa.BinOp:
		if !isInteger(v.X.Type()) {
			return irange.Unsupported
		}
		switch v.Op {
		case token.ADD:
			return irange.Add
		case token.SUB:
			return irange.Sub
		case token.MUL:
			return irange.Mul
		case token.QUO:
			if isSigned(v.X.Type()) {
				return irange.Div
			}
		case token.EQL:
			return irange.Eq
		case token.NEQ:
			return irange.Ne
		case token.LSS:
			return irange.Lt
		case token.GTR:
			return irange.Gt
		case token.LEQ:
			return irange.Le
		case token.GEQ:
			return irange.Ge
		}
	case *ssa.Alloc:
		return irange.Alloc
	case *ssa.UnOp:
		if v.Op == token.MUL {
			return irange.Load
		}
	case *ssa.Call:
		return irange.Call
	}
	return irange.Unsupported
}

func isInteger(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsInteger != 0
}

func isSigned(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsUnsigned == 0
}

// Name is the fully qualified name of the function.
func (g *Graph) Name() string {
	return g.fun.String()
}

// Nodes are the analyzable instructions, in block order.
func (g *Graph) Nodes() []irange.Node {
	return g.nodes
}

// Function is the underlying SSA function.
func (g *Graph) Function() *ssa.Function {
	return g.fun
}

// Lookup retrieves the node of an SSA value, if it is analyzable.
func (g *Graph) Lookup(v ssa.Value) (*Node, bool) {
	n, ok := g.index[v]
	return n, ok
}

// operand converts an SSA value to an operand of the graph.
func (g *Graph) operand(v ssa.Value) irange.Operand {
	switch v := v.(type) {
	case *ssa.Const:
		if v.Value != nil && v.Value.Kind() == constant.Int {
			if i, exact := constant.Int64Val(v.Value); exact {
				return irange.Lit(i)
			}
		}
		return irange.Unknown
	}
	if n, ok := g.index[v]; ok {
		return irange.Ref(n)
	}
	return irange.Unknown
}

func (g *Graph) operands(vs ...ssa.Value) []irange.Operand {
	ops := make([]irange.Operand, 0, len(vs))
	for _, v := range vs {
		ops = append(ops, g.operand(v))
	}
	return ops
}

func (n *Node) Name() string {
	return n.value.Name()
}

func (n *Node) Kind() irange.Kind {
	return n.kind
}

// Value is the underlying SSA value.
func (n *Node) Value() ssa.Value {
	return n.value
}

func (n *Node) Operands() []irange.Operand {
	switch v := n.value.(type) {
	case *ssa.Phi:
		return n.g.operands(v.Edges...)
	case *ssa.BinOp:
		return n.g.operands(v.X, v.Y)
	case *ssa.UnOp:
		return n.g.operands(v.X)
	case *ssa.Call:
		return n.g.operands(v.Call.Args...)
	}
	return nil
}

func (n *Node) Incoming() []irange.Operand {
	if phi, ok := n.value.(*ssa.Phi); ok {
		return n.g.operands(phi.Edges...)
	}
	return nil
}

// Users are the analyzable instructions referring to the node, without duplicates.
func (n *Node) Users() []irange.Node {
	refs := n.value.Referrers()
	if refs == nil {
		return nil
	}

	users := []irange.Node{}
	seen := make(map[*Node]bool)
	for _, insn := range *refs {
		v, ok := insn.(ssa.Value)
		if !ok {
			continue
		}
		if u, ok := n.g.index[v]; ok && !seen[u] {
			seen[u] = true
			users = append(users, u)
		}
	}
	return users
}

// Bounds is the range of values of fixed-width integer types that wrap
// around before reaching the int64 range. int and int64 are unbounded,
// since the analysis models them as mathematical integers.
func (n *Node) Bounds() (L.Interval, bool) {
	b, ok := n.value.Type().Underlying().(*types.Basic)
	if !ok {
		return L.Full(), false
	}

	switch b.Kind() {
	case types.Int8:
		return L.IntervalFinite(math.MinInt8, math.MaxInt8), true
	case types.Int16:
		return L.IntervalFinite(math.MinInt16, math.MaxInt16), true
	case types.Int32:
		return L.IntervalFinite(math.MinInt32, math.MaxInt32), true
	case types.Uint8:
		return L.IntervalFinite(0, math.MaxUint8), true
	case types.Uint16:
		return L.IntervalFinite(0, math.MaxUint16), true
	case types.Uint32:
		return L.IntervalFinite(0, math.MaxUint32), true
	case types.Uint, types.Uint64, types.Uintptr:
		return L.MakeInterval(L.FiniteBound(0), L.PlusInfinity{}), true
	}
	return L.Full(), false
}

// String renders the node as the SSA instruction defining it, e.g. t3 = t1 + t2.
func (n *Node) String() string {
	return n.value.Name() + " = " + n.value.String()
}
