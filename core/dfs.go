// File: dfs.go
// Role: Three-color depth-first search with back-edge cycle detection,
//       feeding the staleness cache behind HasCycle and TopologicalSort.
//
// Classification rules on a relation v→n met while visiting v:
//   - n white: recurse with v as n's DFS tree-parent.
//   - n gray:  back-edge. Always a cycle for a directed relation; for an
//     undirected relation only when n is not v's tree-parent (the trivial
//     edge back to where we came from is not an undirected cycle).
//   - n black: forward/cross edge, never a cycle under these rules.
//
// Complexity:
//
//   - Time:   O(V log V + E log E) — the log factors buy deterministic
//     root and neighbor order (sorted ascending, teacher-style).
//   - Memory: O(V) recursion stack, bounded by the longest simple path.

package core

// dfsWalker carries the shared clock across the whole multi-root run.
type dfsWalker struct {
	graph *Graph
	time  int // monotonic; one increment per discovery/finish event
}

// dfs runs a full-forest DFS, stamping discovery/finish times and setting
// the cached cycle flag. Only DFS-owned transient fields (color, stamps)
// are re-initialized; BFS results and validity are left alone.
func (g *Graph) dfs() {
	for _, v := range g.vertices {
		v.col = white
		v.disc = unsetTime
		v.fin = unsetTime
	}
	g.cycle = false

	w := &dfsWalker{graph: g}

	// Every vertex is a potential new root, so disconnected components are
	// all covered; sorted order keeps timestamps reproducible.
	for _, id := range g.Vertices() {
		if v := g.vertices[id]; v.col == white {
			w.visit(v, noParent)
		}
	}

	g.dfsValid = true
}

// visit explores v recursively. parent is v's DFS tree-parent identity —
// a recursion-local argument, distinct from the stored BFS parent field.
func (w *dfsWalker) visit(v *vertex, parent string) {
	v.col = gray
	w.time++
	v.disc = w.time

	for _, nid := range w.graph.Neighbors(v.id) {
		kind := v.relations[nid]
		n := w.graph.vertices[nid]

		if n.col == white {
			w.visit(n, v.id)
		}

		// Back-edge check runs after a possible recursion: a neighbor we just
		// finished is black by now and cannot fire it.
		if n.col == gray {
			if kind == KindDirected || nid != parent {
				w.graph.cycle = true
			}
		}
	}

	v.col = black
	w.time++
	v.fin = w.time
}

// HasCycle reports whether the graph contains a cycle, lazily re-running
// DFS only when a mutation invalidated the cached run.
//
// An empty graph, or one of isolated vertices, is cycle-free; a single
// undirected edge is not a cycle (back-edge-to-parent suppression), while
// an undirected triangle is.
func (g *Graph) HasCycle() bool {
	if !g.dfsValid {
		g.dfs()
	}

	return g.cycle
}
