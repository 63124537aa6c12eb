// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/RemoveVertex/HasVertex/
//       Vertices/VertexCount, plus the reset(hard) staleness helper.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Staleness:
//   - Every mutation entry point calls reset before touching topology;
//     no-op calls (existing vertex, empty ID) must not flip validity flags.

package core

import "sort"

// reset clears the traversal staleness cache. With hard=true it also wipes
// every record's transient state (colors, timestamps, distances, parents);
// hard resets are used by RemoveVertex, where stale global orderings would
// otherwise survive on the remaining records, and internally before each
// traversal re-initializes its own fields.
func (g *Graph) reset(hard bool) {
	g.dfsValid = false
	g.bfsValid = false
	g.cycle = false

	if hard {
		for _, v := range g.vertices {
			v.col = white
			v.disc = unsetTime
			v.fin = unsetTime
			v.dist = unreachedDist
			v.parent = noParent
		}
	}
}

// AddVertex inserts a bare vertex if missing (idempotent).
//
// A new isolated vertex cannot introduce cycles, but insertion still
// invalidates cached traversals for consistency with the other mutators.
// Adding an existing vertex is a no-op and leaves the cache untouched.
// The empty identity is reserved and ignored.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) {
	if id == "" {
		return
	}
	if _, exists := g.vertices[id]; exists {
		return // no-op for existing vertex; cache stays valid
	}

	g.reset(false)
	g.vertices[id] = newVertex(id)
}

// RemoveVertex deletes a vertex and every relation touching it, using
// Disconnect semantics so undirected mirrors and both edge counters stay
// consistent. Removing an absent vertex is a silent no-op.
//
// The reset is hard: DFS/BFS orderings are global, so transient state is
// cleared on all remaining records, not just the removed one.
//
// Complexity: O(V + deg) for the incident-relation sweep.
func (g *Graph) RemoveVertex(id string) {
	v, exists := g.vertices[id]
	if !exists {
		return
	}

	g.reset(true)

	// Drop relations leaving the vertex (covers undirected pairs via the
	// mirror-priority rule in Disconnect). Snapshot first: Disconnect
	// mutates the relation map being walked.
	out := make([]string, 0, len(v.relations))
	for nbr := range v.relations {
		out = append(out, nbr)
	}
	for _, nbr := range out {
		g.Disconnect(id, nbr)
	}
	// Drop remaining directed relations pointing at the vertex.
	for nbr := range g.vertices {
		g.Disconnect(nbr, id)
	}

	delete(g.vertices, id)
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Stable enumeration surface; traversals seed from it for reproducibility.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}
