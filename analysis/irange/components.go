package irange

import (
	"github.com/cs-au-dk/irange/utils/graph"

	uf "github.com/spakin/disjoint"
)

// Components partitions the nodes of G into def-use connected components.
// Nodes in distinct components never influence each other's intervals.
// Components are ordered by their first node, and nodes within a component
// are kept in program order.
func Components(G Graph) [][]Node {
	nodes := G.Nodes()
	elements := make(map[Node]*uf.Element, len(nodes))
	for _, n := range nodes {
		el := uf.NewElement()
		el.Data = n
		elements[n] = el
	}

	for _, n := range nodes {
		for _, o := range inputs(n) {
			if o.Node == nil {
				continue
			}
			if el, ok := elements[o.Node]; ok {
				uf.Union(elements[n], el)
			}
		}
		for _, u := range n.Users() {
			if el, ok := elements[u]; ok {
				uf.Union(elements[n], el)
			}
		}
	}

	index := make(map[*uf.Element]int)
	components := [][]Node{}
	for _, n := range nodes {
		rep := elements[n].Find()
		i, ok := index[rep]
		if !ok {
			i = len(components)
			index[rep] = i
			components = append(components, nil)
		}
		components[i] = append(components[i], n)
	}

	return components
}

// ComponentOf maps every node of G to the index of its component,
// as returned by Components.
func ComponentOf(G Graph) map[Node]int {
	res := make(map[Node]int)
	for i, c := range Components(G) {
		for _, n := range c {
			res[n] = i
		}
	}
	return res
}

// Cycles gathers the nodes of G that lie on a def-use cycle. These are the
// only nodes whose intervals may be widened past the constants of the
// function, e.g. loop counters.
func Cycles(G Graph) map[Node]bool {
	nodes := G.Nodes()
	inGraph := make(map[Node]bool, len(nodes))
	for _, n := range nodes {
		inGraph[n] = true
	}

	dug := graph.Of(func(n Node) (ret []Node) {
		for _, u := range n.Users() {
			if inGraph[u] {
				ret = append(ret, u)
			}
		}
		return
	})

	scc := dug.SCC(nodes)
	res := make(map[Node]bool)
	for i, comp := range scc.Components {
		if scc.IsCyclic(i) {
			for _, n := range comp {
				res[n] = true
			}
		}
	}
	return res
}
