// File: bfs.go
// Role: Single-source breadth-first search over outgoing relations, and
//       shortest-path reconstruction from the cached parent links.
//
// Complexity:
//
//   - Time:   O(V + E log E) — neighbors are expanded in sorted order so
//     ties between equal-length paths resolve deterministically.
//   - Memory: O(V) for the queue.

package core

// bfs runs BFS from source, recording hop distances and parent links on
// the vertex records. Only BFS-owned transient fields (dist, parent) are
// re-initialized; DFS results and validity are left alone. Discovery is
// tracked by the distance sentinel rather than the DFS color field.
func (g *Graph) bfs(source string) {
	for _, v := range g.vertices {
		v.dist = unreachedDist
		v.parent = noParent
	}

	g.bfsSource = source
	g.vertices[source].dist = 0

	queue := []string{source}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		v := g.vertices[id]
		for _, nid := range g.Neighbors(id) {
			if n := g.vertices[nid]; n.dist == unreachedDist {
				n.dist = v.dist + 1
				n.parent = id
				queue = append(queue, nid)
			}
		}
	}

	g.bfsValid = true
}

// Path returns the shortest chain of identities from source to target,
// source-first and target-last, following outgoing relations.
//
// Unknown endpoints yield an empty slice, never an error; so does an
// unreached target. Path(a, a) on a graph containing a is [a]. A fresh BFS
// runs only when the cache is stale or was computed from another source.
func (g *Graph) Path(source, target string) []string {
	if !g.HasVertex(source) || !g.HasVertex(target) {
		return []string{}
	}
	if !g.bfsValid || g.bfsSource != source {
		g.bfs(source)
	}
	if source == target {
		return []string{source}
	}
	if g.vertices[target].parent == noParent {
		return []string{}
	}

	// Walk parent links target→source, then reverse.
	res := make([]string, 0, g.vertices[target].dist+1)
	for tmp := target; tmp != noParent; tmp = g.vertices[tmp].parent {
		res = append(res, tmp)
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}

	return res
}
