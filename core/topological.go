// File: topological.go
// Role: Topological sort of a purely directed acyclic graph, read off the
//       cached DFS finish times in descending order (reverse post-order).
//
// Complexity:
//
//   - Time:   O(V + E) when a DFS re-run is needed, else O(V log V).
//   - Memory: O(V).

package core

import "sort"

// TopologicalSort returns a linear ordering of all vertex identities such
// that for every directed relation a→b, a appears before b.
//
// Preconditions are reported as sentinels rather than an ordering:
// ErrNotDirected when any undirected relation exists, ErrCycleDetected
// when the graph is cyclic. An empty graph yields an empty, valid order.
//
// HasCycle is consulted first, so the finish times read here always come
// from a current DFS run. Ties cannot occur: the shared DFS clock stamps
// each finish event with a distinct value.
func (g *Graph) TopologicalSort() ([]string, error) {
	if g.Type() != TypeDirected {
		return nil, ErrNotDirected
	}
	if g.HasCycle() {
		return nil, ErrCycleDetected
	}

	order := g.Vertices()
	sort.Slice(order, func(i, j int) bool {
		return g.vertices[order[i]].fin > g.vertices[order[j]].fin
	})

	return order, nil
}
