// File: view.go
// Role: Non-mutating graph views: relation enumeration, the human-readable
//       debug representation, and Clone.
// Determinism:
//   - Edges() sorts by (From, To) ascending; String() builds on it.

package core

import (
	"sort"
	"strings"
)

// Edges returns every stored (From, To, Kind) relation triple, sorted by
// source then destination. Undirected relations appear twice, once per
// mirror entry — the enumeration is a faithful view of the records, not a
// deduplicated edge set.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.directedEdges+2*g.undirectedEdges)
	for id, v := range g.vertices {
		for nbr, kind := range v.relations {
			out = append(out, Edge{From: id, To: nbr, Kind: kind})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// String renders the vertices and relation triples for debugging and
// printing only; the format is not a parseable persisted representation.
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString("Graph(vertices=[")
	b.WriteString(strings.Join(g.Vertices(), " "))
	b.WriteString("], edges=[")
	for i, e := range g.Edges() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		b.WriteString(e.From)
		b.WriteByte(',')
		b.WriteString(e.To)
		b.WriteByte(',')
		b.WriteString(e.Kind.String())
		b.WriteByte(')')
	}
	b.WriteString("])")

	return b.String()
}

// Clone returns an independent deep copy of the graph: records, relation
// maps, counters, and the staleness cache (including any valid traversal
// results). Mutating either graph never affects the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		vertices:        make(map[string]*vertex, len(g.vertices)),
		directedEdges:   g.directedEdges,
		undirectedEdges: g.undirectedEdges,
		dfsValid:        g.dfsValid,
		bfsValid:        g.bfsValid,
		cycle:           g.cycle,
		bfsSource:       g.bfsSource,
	}
	for id, v := range g.vertices {
		nv := &vertex{
			id:        id,
			relations: make(map[string]Kind, len(v.relations)),
			col:       v.col,
			disc:      v.disc,
			fin:       v.fin,
			dist:      v.dist,
			parent:    v.parent,
		}
		for nbr, kind := range v.relations {
			nv.relations[nbr] = kind
		}
		out.vertices[id] = nv
	}

	return out
}
