// Package graph provides graph algorithms over data that has a graph
// representation. The caller only describes the edge relation.
package graph

// Graph is a directed graph given by an edge function. Edges are
// computed once per node and cached.
type Graph[T comparable] struct {
	edgesOf func(node T) []T
	cache   map[T][]T
}

// Of constructs the graph with the given edge relation.
func Of[T comparable](edgesOf func(node T) []T) Graph[T] {
	return Graph[T]{
		edgesOf: edgesOf,
		cache:   make(map[T][]T),
	}
}

// Edges returns the successors of node.
func (G Graph[T]) Edges(node T) []T {
	if es, found := G.cache[node]; found {
		return es
	}

	es := G.edgesOf(node)
	G.cache[node] = es
	return es
}
