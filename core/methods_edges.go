// File: methods_edges.go
// Role: Relation lifecycle & queries: ConnectDirected/ConnectUndirected/
//       Disconnect, Neighbors/Relation/HasEdge, edge counters, Type.
// Invariants:
//   - No self-relations.
//   - Undirected relations are always mirrored in both records, same kind.
//   - At most one kind per ordered (source, destination) pair; installing a
//     kind first evicts a conflicting kind occupying the same slot.
// Determinism:
//   - Neighbors() returns IDs sorted lexicographically ascending.

package core

import "sort"

// ConnectDirected installs the directed relation source→destination,
// creating missing endpoints. If the pair currently holds an undirected
// relation, that relation (and its mirror) is evicted first. A *directed*
// relation destination→source is its own slot and is left untouched.
//
// Self-pairs are silently ignored without invalidating the cache; any other
// call invalidates cached traversals, even when the edge set ends up
// unchanged (conservative staleness policy).
//
// Complexity: O(1) amortized.
func (g *Graph) ConnectDirected(source, destination string) {
	if source == destination || source == "" || destination == "" {
		return
	}

	g.reset(false)
	g.AddVertex(source)
	g.AddVertex(destination)

	src, dst := g.vertices[source], g.vertices[destination]

	// Evict an undirected occupant of this pair, mirror included.
	if src.relations[destination] == KindUndirected {
		g.undirectedEdges--
		delete(src.relations, destination)
		delete(dst.relations, source)
	}

	// Idempotent install: count the relation only when it is new.
	if src.relations[destination] != KindDirected {
		g.directedEdges++
		src.relations[destination] = KindDirected
	}
}

// ConnectUndirected installs the symmetric relation source—destination,
// creating missing endpoints. Directed relations in *either* direction
// between the pair are evicted first, decrementing the directed counter
// once per removed direction.
//
// Self-pairs are silently ignored without invalidating the cache.
//
// Complexity: O(1) amortized.
func (g *Graph) ConnectUndirected(source, destination string) {
	if source == destination || source == "" || destination == "" {
		return
	}

	g.reset(false)
	g.AddVertex(source)
	g.AddVertex(destination)

	src, dst := g.vertices[source], g.vertices[destination]

	// Evict directed occupants of both directional slots.
	if src.relations[destination] == KindDirected {
		g.directedEdges--
		delete(src.relations, destination)
	}
	if dst.relations[source] == KindDirected {
		g.directedEdges--
		delete(dst.relations, source)
	}

	// Idempotent mirrored install; the undirected counter moves once per pair.
	if src.relations[destination] != KindUndirected {
		g.undirectedEdges++
		src.relations[destination] = KindUndirected
		dst.relations[source] = KindUndirected
	}
}

// Disconnect removes the relation between source and destination by
// priority: an undirected pair (checked as destination→source, so either
// orientation of the call works) is removed with its mirror; otherwise a
// directed source→destination relation is removed. A directed relation
// existing only as destination→source is deliberately left untouched —
// Disconnect is direction-sensitive for directed relations.
//
// Self-pairs and missing endpoints are silent no-ops that leave the cache
// valid; any other call invalidates it, matched or not.
//
// Complexity: O(1).
func (g *Graph) Disconnect(source, destination string) {
	if source == destination {
		return
	}
	src, okSrc := g.vertices[source]
	dst, okDst := g.vertices[destination]
	if !okSrc || !okDst {
		return
	}

	g.reset(false)

	switch {
	case dst.relations[source] == KindUndirected:
		g.undirectedEdges--
		delete(dst.relations, source)
		delete(src.relations, destination)
	case src.relations[destination] == KindDirected:
		g.directedEdges--
		delete(src.relations, destination)
	}
}

// Neighbors returns the identities a vertex holds outgoing relations to,
// sorted ascending. Undirected neighbors appear because of their mirrored
// entry. An unknown (or empty) ID yields an empty slice, never an error.
//
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) []string {
	v, ok := g.vertices[id]
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(v.relations))
	for nbr := range v.relations {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out
}

// Relation reports the kind occupying the ordered slot from→to, if any.
// Complexity: O(1).
func (g *Graph) Relation(from, to string) (Kind, bool) {
	v, ok := g.vertices[from]
	if !ok {
		return 0, false
	}
	k, ok := v.relations[to]

	return k, ok
}

// HasEdge reports whether any relation occupies the ordered slot from→to.
// Undirected relations are mirrored, so HasEdge holds in both directions.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Relation(from, to)

	return ok
}

// DirectedEdgeCount returns the running total of directed relations.
// Complexity: O(1).
func (g *Graph) DirectedEdgeCount() int { return g.directedEdges }

// UndirectedEdgeCount returns the running total of undirected relations
// (one per pair, not per mirror entry).
// Complexity: O(1).
func (g *Graph) UndirectedEdgeCount() int { return g.undirectedEdges }

// EdgeCount returns the total number of relations of both kinds.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.directedEdges + g.undirectedEdges }

// Type classifies the graph from its live counters: Mixed when both kinds
// coexist, Undirected when only undirected relations exist, and Directed
// otherwise (the empty graph included).
// Complexity: O(1).
func (g *Graph) Type() GraphType {
	switch {
	case g.undirectedEdges > 0 && g.directedEdges > 0:
		return TypeMixed
	case g.undirectedEdges > 0:
		return TypeUndirected
	default:
		return TypeDirected
	}
}
