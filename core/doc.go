// Package core implements the mixed graph engine: identity-keyed vertex
// records carrying typed outgoing relations, mutation with
// directed↔undirected displacement bookkeeping, three-color DFS with cycle
// detection, single-source BFS with shortest-path reconstruction,
// topological sort, and a staleness cache that lazily recomputes traversal
// results only after a mutation.
//
// Key properties:
//   - Total functions: queries on missing vertices return empty results;
//     self-pair mutations and absent-vertex removals are silent no-ops.
//     Only TopologicalSort reports "not applicable", via sentinel errors.
//   - At most one relation kind per ordered (source, destination) slot;
//     undirected relations are mirrored on both records.
//   - Deterministic: every enumeration surface is sorted ascending.
//   - Single-writer: no internal locking; concurrent use without external
//     synchronization is undefined.
//
// Typical usage:
//
//	g := core.NewGraph(core.WithVertices("A", "B"))
//	g.ConnectDirected("A", "B")
//	g.ConnectUndirected("B", "C")
//	g.Type()               // core.TypeMixed
//	g.HasCycle()           // false, cached until the next mutation
//	g.Path("A", "C")       // [A B C]
package core
