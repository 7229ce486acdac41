package ssagraph

import (
	"bytes"
	"math"
	"testing"

	"github.com/cs-au-dk/irange/analysis/irange"
	L "github.com/cs-au-dk/irange/analysis/lattice"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"golang.org/x/tools/go/ssa"
)

const reportSrc = `package main

func branch(c bool) int {
	x := 1
	if c {
		x = 10
	}
	return x * 3
}

func straight(x int) bool {
	y := x * 2
	z := y / 2
	return z < 100
}

func opaque(p *int, f func() int) int {
	return *p + f()
}
`

func build(t *testing.T, src string) *ssa.Package {
	t.Helper()
	pkg, err := Build(src)
	if err != nil {
		t.Fatal(err)
	}
	return pkg
}

func TestReports(t *testing.T) {
	pkg := build(t, reportSrc)

	for _, name := range []string{"branch", "straight", "opaque"} {
		t.Run(name, func(t *testing.T) {
			res := irange.Config{}.Analyze(New(pkg.Func(name)))

			var out bytes.Buffer
			if err := res.Report(&out); err != nil {
				t.Fatal(err)
			}

			goldie.New(t).Assert(t, t.Name(), out.Bytes())
		})
	}
}

func TestLoop(t *testing.T) {
	pkg := build(t, `package main

func count() int {
	n := 0
	for i := 0; i < 10; i++ {
		n = n + 2
	}
	return n
}
`)

	G := New(pkg.Func("count"))
	res := irange.Config{}.Analyze(G)

	var merges, adds []irange.Node
	for _, n := range G.Nodes() {
		switch n.Kind() {
		case irange.Merge:
			merges = append(merges, n)
		case irange.Add:
			adds = append(adds, n)
		}
	}
	if len(merges) != 2 || len(adds) != 2 {
		t.Fatalf("Expected 2 merges and 2 additions, found %d and %d", len(merges), len(adds))
	}

	for _, n := range merges {
		expected := L.MakeInterval(L.FiniteBound(0), L.PlusInfinity{})
		if res := res.Interval(n); res != expected {
			t.Errorf("%s = %s, expected %s", n, res, expected)
		}
	}
	for _, n := range adds {
		low := n.Operands()[1].Literal
		expected := L.MakeInterval(L.FiniteBound(low), L.PlusInfinity{})
		if res := res.Interval(n); res != expected {
			t.Errorf("%s = %s, expected %s", n, res, expected)
		}
	}

	if res, expected := res.Thresholds.String(), "-inf,0,1,2,10,+inf"; res != expected {
		t.Errorf("Collected thresholds %s, expected %s", res, expected)
	}
}

func TestClassify(t *testing.T) {
	pkg := build(t, `package main

func kinds(a, b int, u, v uint, s, r string, p *int) {
	_ = a + b
	_ = a - b
	_ = a * b
	_ = a / b
	_ = a % b
	_ = a == b
	_ = a != b
	_ = a < b
	_ = a > b
	_ = a <= b
	_ = a >= b
	_ = u / v
	_ = u + v
	_ = s + r
	_ = s < r
	_ = *p
	_ = len(s)
	sink(new(int))
}

func sink(*int) {}
`)

	var kinds []irange.Kind
	for _, n := range New(pkg.Func("kinds")).Nodes() {
		kinds = append(kinds, n.Kind())
	}

	expected := []irange.Kind{
		irange.Add, irange.Sub, irange.Mul, irange.Div,
		irange.Eq, irange.Ne, irange.Lt, irange.Gt, irange.Le, irange.Ge,
		irange.Add,
		irange.Load,
		irange.Call,
		irange.Alloc,
		irange.Call,
	}
	if diff := cmp.Diff(expected, kinds); diff != "" {
		t.Errorf("Kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestOperands(t *testing.T) {
	pkg := build(t, `package main

func operands(x int, y uint64) (int, uint64) {
	a := x + 7
	b := a - x
	c := y * 18446744073709551615
	return b, c
}
`)

	G := New(pkg.Func("operands"))
	nodes := G.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("Expected 3 nodes, found %d: %v", len(nodes), nodes)
	}
	a, b, c := nodes[0], nodes[1], nodes[2]

	check := func(n irange.Node, expected ...irange.Operand) {
		t.Helper()
		if diff := cmp.Diff(expected, n.Operands(), cmp.Comparer(func(x, y irange.Node) bool {
			return x == y
		})); diff != "" {
			t.Errorf("Operands of %s mismatch (-want +got):\n%s", n, diff)
		}
	}

	check(a, irange.Unknown, irange.Lit(7))
	check(b, irange.Ref(a), irange.Unknown)
	check(c, irange.Unknown, irange.Unknown)

	if diff := cmp.Diff([]irange.Node{b}, a.Users(), cmp.Comparer(func(x, y irange.Node) bool {
		return x == y
	})); diff != "" {
		t.Errorf("Users of %s mismatch (-want +got):\n%s", a, diff)
	}
	if len(b.Users()) != 0 {
		t.Errorf("%s should have no analyzable users, found %v", b, b.Users())
	}

	res := irange.Config{}.Analyze(G)
	if res := res.Interval(c); !res.IsTop() {
		t.Errorf("%s = %s, expected %s", c, res, L.Full())
	}
}

func TestWraparound(t *testing.T) {
	pkg := build(t, `package main

func wrap(b bool) (uint, int8, uint8) {
	var u uint
	if b {
		u = 1
	}
	var x int8 = 100
	var y uint8 = 3
	if b {
		x = 120
		y = 5
	}
	return u - 1, x + 100, y * 2
}
`)

	G := New(pkg.Func("wrap"))
	res := irange.Config{}.Analyze(G)

	expected := map[string]L.Interval{
		"merge uint":  L.IntervalFinite(0, 1),
		"merge int8":  L.IntervalFinite(100, 120),
		"sub uint":    L.MakeInterval(L.FiniteBound(0), L.PlusInfinity{}),
		"add int8":    L.IntervalFinite(math.MinInt8, math.MaxInt8),
		"merge uint8": L.IntervalFinite(3, 5),
		"mul uint8":   L.IntervalFinite(6, 10),
	}

	found := 0
	for _, n := range G.Nodes() {
		key := n.Kind().String() + " " + n.(*Node).Value().Type().String()
		exp, ok := expected[key]
		if !ok {
			continue
		}
		found++
		if res := res.Interval(n); res != exp {
			t.Errorf("%s = %s, expected %s", n, res, exp)
		}
	}
	if found != len(expected) {
		t.Errorf("Expected %d nodes, found %d", len(expected), found)
	}
}

func TestBounds(t *testing.T) {
	pkg := build(t, `package main

func bounds(a int, b int64, c uint8, d uint32, e uintptr) {
	_ = a + 1
	_ = b + 1
	_ = c + 1
	_ = d + 1
	_ = e + 1
	_ = a < 1
}
`)

	tests := []struct {
		bounds  L.Interval
		bounded bool
	}{
		{L.Full(), false},
		{L.Full(), false},
		{L.IntervalFinite(0, math.MaxUint8), true},
		{L.IntervalFinite(0, math.MaxUint32), true},
		{L.MakeInterval(L.FiniteBound(0), L.PlusInfinity{}), true},
		{L.Full(), false},
	}

	nodes := New(pkg.Func("bounds")).Nodes()
	if len(nodes) != len(tests) {
		t.Fatalf("Expected %d nodes, found %d: %v", len(tests), len(nodes), nodes)
	}
	for i, test := range tests {
		bounds, bounded := nodes[i].(*Node).Bounds()
		if bounded != test.bounded || bounds != test.bounds {
			t.Errorf("Bounds of %s = %s, %v, expected %s, %v",
				nodes[i], bounds, bounded, test.bounds, test.bounded)
		}
	}
}

func TestFunctions(t *testing.T) {
	pkg := build(t, `package main

type T struct{}

func (T) value() int { return 1 }

func (*T) pointer() int { return 2 }

func outer() func() int {
	return func() int { return 3 }
}
`)

	var names []string
	for _, fn := range Functions(pkg) {
		names = append(names, fn.String())
	}

	expected := []string{
		"(main.T).value",
		"(*main.T).pointer",
		"main.outer",
		"main.outer$1",
	}
	if diff := cmp.Diff(expected, names); diff != "" {
		t.Errorf("Functions mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildError(t *testing.T) {
	if _, err := Build("package main\nfunc broken( {}"); err == nil {
		t.Error("Expected parse error")
	}
	if _, err := Build("package main\nfunc f() int { return undefined }"); err == nil {
		t.Error("Expected type error")
	}
}
