package graph

// SCC is the index of a strongly connected component.
type SCC = int

// SCCDecomposition is a DAG decomposition of a graph based on strongly
// connected components. The nodes in component i only have edges to nodes
// in components with index j <= i.
type SCCDecomposition[T comparable] struct {
	Components [][]T
	comp       map[T]SCC
	Original   Graph[T]
}

// ComponentOf returns the index of the component the node is a part of,
// or -1 if the node was not reached.
func (scc SCCDecomposition[T]) ComponentOf(node T) SCC {
	if c, found := scc.comp[node]; found {
		return c
	}
	return -1
}

// IsCyclic checks whether a component contains a cycle, i. e. it has
// more than one node, or its only node has an edge to itself.
func (scc SCCDecomposition[T]) IsCyclic(c SCC) bool {
	nodes := scc.Components[c]
	if len(nodes) != 1 {
		return len(nodes) > 1
	}
	for _, e := range scc.Original.Edges(nodes[0]) {
		if e == nodes[0] {
			return true
		}
	}
	return false
}

// SCC computes the strongly connected components of the subgraph reachable
// from the provided start nodes, with Tarjan's algorithm.
func (G Graph[T]) SCC(startNodes []T) SCCDecomposition[T] {
	scc := SCCDecomposition[T]{
		comp:     make(map[T]SCC),
		Original: G,
	}

	// Visit order of every reached node. Lowered to the smallest visit
	// order reachable from the node without leaving the stack.
	low := make(map[T]int)
	var stack []T

	var visit func(T)
	visit = func(node T) {
		order := len(low)
		low[node] = order
		stack = append(stack, node)

		for _, e := range G.Edges(node) {
			if _, done := scc.comp[e]; done {
				continue
			}
			if _, seen := low[e]; !seen {
				visit(e)
			}
			if low[e] < low[node] {
				low[node] = low[e]
			}
		}

		if low[node] != order {
			return
		}

		// node is the root of a component, which consists of
		// everything above it on the stack.
		c := len(scc.Components)
		var nodes []T
		for {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			scc.comp[top] = c
			nodes = append(nodes, top)
			if top == node {
				break
			}
		}
		scc.Components = append(scc.Components, nodes)
	}

	for _, node := range startNodes {
		if _, seen := low[node]; !seen {
			visit(node)
		}
	}

	return scc
}

// ToGraph returns the condensation of the decomposition.
// Nodes are component indices.
func (scc SCCDecomposition[T]) ToGraph() Graph[SCC] {
	return Of(func(c SCC) (ret []SCC) {
		seen := map[SCC]bool{}
		for _, node := range scc.Components[c] {
			for _, e := range scc.Original.Edges(node) {
				if ec := scc.ComponentOf(e); ec != c && !seen[ec] {
					seen[ec] = true
					ret = append(ret, ec)
				}
			}
		}
		return
	})
}
