// Package mixgraph is an in-memory engine for mixed graphs — graphs where
// directed and undirected edges coexist over the same vertex set — with a
// small, classical algorithm suite and lazy result caching.
//
// 🚀 What is mixgraph?
//
//	A compact, single-writer library that brings together:
//		• Core primitives: identity-keyed vertices, typed relation kinds
//		• Mutation: connect/disconnect with directed↔undirected displacement
//		• Traversals: three-color DFS with cycle detection, BFS
//		• Orderings: topological sort by descending finish time
//		• Shortest paths: unweighted BFS parent-chain reconstruction
//		• Staleness cache: traversals recompute only after a mutation
//
// ✨ Why choose mixgraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Total functions – queries on missing vertices return empty results,
//     never errors; only TopologicalSort reports "not applicable"
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – sorted enumeration everywhere, stable golden tests
//
// Under the hood, everything is organized under two subpackages:
//
//	core/    — the Graph engine: vertex records, mutation, DFS/BFS, cache
//	builder/ — deterministic topology constructors (Path, Cycle, Star, ...)
//
// Quick ASCII example:
//
//	    A──B
//	    │  ↓
//	    C─→D
//
//	mixes an undirected A─B, A─C with directed B→D, C→D.
//
// A directed-only graph is simply a mixed graph that never constructs an
// undirected relation; the engine's Type() reports Directed, Undirected or
// Mixed from its live edge-kind counters.
//
//	go get github.com/katalvlaran/mixgraph/core
package mixgraph
