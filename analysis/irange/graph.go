package irange

import (
	"fmt"
	"strconv"

	L "github.com/cs-au-dk/irange/analysis/lattice"
)

// Kind classifies program graph nodes by the operation they perform.
type Kind int

const (
	Unsupported Kind = iota
	Merge
	Select
	Add
	Sub
	Mul
	Div
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
	Alloc
	Load
	Call
)

var kindNames = [...]string{
	Unsupported: "unsupported",
	Merge:       "merge",
	Select:      "select",
	Add:         "add",
	Sub:         "sub",
	Mul:         "mul",
	Div:         "div",
	Eq:          "eq",
	Ne:          "ne",
	Lt:          "lt",
	Gt:          "gt",
	Le:          "le",
	Ge:          "ge",
	Alloc:       "alloc",
	Load:        "load",
	Call:        "call",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Supported checks whether nodes of this kind are analyzable.
func (k Kind) Supported() bool {
	return k > Unsupported && k <= Call
}

// IsComparison is true for the comparison kinds.
func (k Kind) IsComparison() bool {
	return k >= Eq && k <= Ge
}

// Operand is an input of a node. It is either an integer literal,
// another analyzable node of the same graph, or unknown (when Node is nil
// and IsLiteral is false).
type Operand struct {
	Node      Node
	Literal   int64
	IsLiteral bool
}

// Lit constructs a literal operand.
func Lit(v int64) Operand {
	return Operand{Literal: v, IsLiteral: true}
}

// Ref constructs an operand referring to an analyzable node.
func Ref(n Node) Operand {
	return Operand{Node: n}
}

// Unknown is an operand about which nothing is known.
var Unknown = Operand{}

// IsUnknown is true if the operand is neither a literal nor a node.
func (o Operand) IsUnknown() bool {
	return !o.IsLiteral && o.Node == nil
}

func (o Operand) String() string {
	switch {
	case o.IsLiteral:
		return strconv.FormatInt(o.Literal, 10)
	case o.Node != nil:
		return o.Node.Name()
	}
	return "?"
}

// Node is an analyzable value-producing operation. Implementations must be
// pointer-shaped, since nodes are identified by pointer identity.
type Node interface {
	// Name is a short identifier of the node, e.g. t3.
	Name() string
	Kind() Kind
	// Operands of the node. For Select, the operands are
	// (condition, value if true, value if false).
	Operands() []Operand
	// Incoming values of a Merge, in edge order.
	Incoming() []Operand
	// Users are the analyzable nodes that consume the value of this node.
	Users() []Node
	String() string
}

// Bounded is implemented by nodes whose values wrap around outside of
// a fixed range, e.g. unsigned or narrow integers. A computed interval
// that is not contained in the range is replaced by the range.
type Bounded interface {
	Node
	// Bounds reports the range of the node, if it has one.
	Bounds() (L.Interval, bool)
}

// Graph is the def-use graph of a single function.
type Graph interface {
	Name() string
	// Nodes are the analyzable nodes, in program order.
	Nodes() []Node
}

// inputs retrieves the operands from which the value of n is computed.
func inputs(n Node) []Operand {
	if n.Kind() == Merge {
		return n.Incoming()
	}
	return n.Operands()
}

func errUnsupportedKind(n Node) error {
	return fmt.Errorf("%w: %s has kind %s", errUnsupportedOperation, n, n.Kind())
}
