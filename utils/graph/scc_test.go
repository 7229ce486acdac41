package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

var edges = map[int][]int{
	0:  {1, 8},
	1:  {4, 5, 2},
	2:  {6, 3, 9},
	3:  {2, 7},
	4:  {0, 5},
	5:  {6},
	6:  {5},
	7:  {3, 6},
	8:  {},
	9:  {10, 11},
	10: {12, 13},
	11: {12, 13},
	12: {},
	13: {13},
}
var _sampleGraph = Of(func(i int) []int {
	return edges[i]
})

func sorted(comp []int) []int {
	comp = slices.Clone(comp)
	slices.Sort(comp)
	return comp
}

func TestSCC(t *testing.T) {
	scc := _sampleGraph.SCC([]int{0})

	same := [][]int{{0, 1, 4}, {2, 3, 7}, {5, 6}}
	for _, nodes := range same {
		comp := scc.ComponentOf(nodes[0])
		assert.Equal(t, nodes, sorted(scc.Components[comp]))
		assert.True(t, scc.IsCyclic(comp), "%v", nodes)
	}

	for _, node := range []int{8, 9, 10, 11, 12} {
		comp := scc.ComponentOf(node)
		assert.Equal(t, []int{node}, scc.Components[comp])
		assert.False(t, scc.IsCyclic(comp), "%d", node)
	}

	assert.True(t, scc.IsCyclic(scc.ComponentOf(13)))
	assert.Len(t, scc.Components, 9)
}

func TestSCCTopologicalOrder(t *testing.T) {
	scc := _sampleGraph.SCC([]int{0})
	G := scc.ToGraph()

	for i := range scc.Components {
		for _, j := range G.Edges(i) {
			assert.Less(t, j, i)
		}
	}
}

func TestSCCUnreachable(t *testing.T) {
	scc := _sampleGraph.SCC([]int{9})
	assert.Equal(t, -1, scc.ComponentOf(0))
	assert.NotEqual(t, -1, scc.ComponentOf(12))
}
