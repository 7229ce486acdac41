package irange

import (
	"fmt"
	"log"

	L "github.com/cs-au-dk/irange/analysis/lattice"
	"github.com/cs-au-dk/irange/utils/worklist"
)

// Config configures the interval range analysis.
type Config struct {
	// Log enables tracing of the fixpoint computation.
	Log bool
	// Logger receives the trace. Defaults to the standard logger.
	Logger *log.Logger
	// Metrics enables collection of performance metrics.
	Metrics bool
	// Thresholds are widening thresholds in addition to the
	// constants found in the analyzed function.
	Thresholds []int64
}

// Result is the outcome of analyzing a single function.
type Result struct {
	Graph      Graph
	State      State
	Thresholds *L.Thresholds
	Metrics    *Metrics
}

// Interval retrieves the interval computed for n.
func (r *Result) Interval(n Node) L.Interval {
	return r.State.Get(n)
}

type engine struct {
	G       Graph
	known   *L.Thresholds
	state   State
	metrics *Metrics
	logger  *log.Logger
}

// CollectThresholds gathers the integer literals appearing as operands
// of analyzable nodes in G, together with the extra constants.
func CollectThresholds(G Graph, extra ...int64) *L.Thresholds {
	known := L.NewThresholds(extra...)
	for _, n := range G.Nodes() {
		for _, ops := range [][]Operand{n.Operands(), n.Incoming()} {
			for _, o := range ops {
				if o.IsLiteral {
					known.Add(o.Literal)
				}
			}
		}
	}
	return known
}

func (c Config) newEngine(G Graph) *engine {
	e := &engine{
		G:       G,
		known:   CollectThresholds(G, c.Thresholds...),
		state:   L.NewState[Node](),
		metrics: c.initMetrics(),
	}

	if c.Log {
		e.logger = c.Logger
		if e.logger == nil {
			e.logger = log.Default()
		}
	}

	for _, n := range G.Nodes() {
		if !n.Kind().Supported() {
			panic(errUnsupportedKind(n))
		}
		e.state = e.state.Update(n, L.Empty())
	}

	if e.logger != nil {
		e.logger.Printf("known constants of %s: %s\n", G.Name(), e.known)
		e.logger.Printf("initial state of %s\n", G.Name())
		for _, n := range G.Nodes() {
			e.logger.Printf("--> %s = %s\n", n, e.state.Get(n))
		}
	}

	return e
}

// Analyze computes the interval of every analyzable node of G.
// The fixpoint is computed in two passes: a widening pass that
// guarantees termination, followed by a narrowing pass that recovers
// precision lost to widening.
func (c Config) Analyze(G Graph) *Result {
	e := c.newEngine(G)
	e.run()
	return e.result()
}

// TryAnalyze is like Analyze, but recovers from panics raised during the
// analysis, in which case the returned result holds the partially
// computed state.
func (c Config) TryAnalyze(G Graph) (res *Result, err error) {
	var e *engine
	defer func() {
		if r := recover(); r != nil {
			if e != nil {
				e.metrics.Panic(r)
				res = e.result()
			}
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("analysis of %s failed: %w", G.Name(), rerr)
			} else {
				err = fmt.Errorf("analysis of %s failed: %w: %v", G.Name(), errInternal, r)
			}
		}
	}()

	e = c.newEngine(G)
	e.run()
	return e.result(), nil
}

func (e *engine) run() {
	e.metrics.timerStart()
	e.pass(PassWiden)
	e.pass(PassNarrow)
	e.metrics.Done()
}

// pass drains a fresh worklist seeded with every node in program order.
// Widening is applied to computed values only during the widening pass.
func (e *engine) pass(p Pass) {
	W := worklist.Empty[Node]()
	for _, n := range e.G.Nodes() {
		W.AddUnique(n)
	}

	if e.logger != nil {
		e.logger.Printf("%s pass over %s, initial worklist\n", p, e.G.Name())
		for _, n := range e.G.Nodes() {
			e.logger.Printf("--> %s\n", n)
		}
	}

	W.Process(func(n Node, add func(Node)) {
		old := e.state.Get(n)
		current := transfer(n, e.state, e.logger)

		if e.logger != nil {
			e.logger.Printf("analyzing %s\n", n)
			e.logger.Printf("--> old value = %s\n", old)
			e.logger.Printf("--> new value = %s\n", current)
		}

		if p == PassWiden {
			current = L.Widen(current, e.known)
			if e.logger != nil {
				e.logger.Printf("widening with %s\n", e.known)
				e.logger.Printf("--> widened value = %s\n", current)
			}
		}

		changed := old != current
		e.metrics.evaluated(p, changed)
		if !changed {
			return
		}

		e.state = e.state.Update(n, current)
		for _, u := range n.Users() {
			// Users outside the graph are not analyzed.
			if !e.state.Has(u) {
				continue
			}
			if e.logger != nil && !W.Contains(u) {
				e.logger.Printf("adding to worklist: %s\n", u)
			}
			add(u)
		}
	})
}

func (e *engine) result() *Result {
	return &Result{
		Graph:      e.G,
		State:      e.state,
		Thresholds: e.known,
		Metrics:    e.metrics,
	}
}
