// Package core defines the central Graph engine and its vertex records,
// and provides mutation, traversal, and cached-query primitives for
// mixed graphs (directed and undirected relations over one vertex set).
//
// This file declares Kind, GraphType, Edge, the vertex record, Graph,
// GraphOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNotDirected   - topological sort requested on a non-directed graph.
//	ErrCycleDetected - topological sort requested on a cyclic graph.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNotDirected indicates TopologicalSort was called while the graph
	// holds at least one undirected relation.
	ErrNotDirected = errors.New("core: topological sort requires directed graph")

	// ErrCycleDetected indicates TopologicalSort was called on a cyclic graph.
	ErrCycleDetected = errors.New("core: cycle detected")
)

// Kind tags a single relation as directed or undirected.
//
// It is a closed enum: no other values are ever constructed. A purely
// directed engine is the special case that never constructs KindUndirected.
type Kind uint8

const (
	// KindDirected is a one-way relation source→destination, independent of
	// any relation in the reverse direction.
	KindDirected Kind = iota + 1

	// KindUndirected is a symmetric relation, stored as mirrored entries in
	// both endpoints' records with the same kind on both sides.
	KindUndirected
)

// String returns "directed" or "undirected".
func (k Kind) String() string {
	if k == KindUndirected {
		return "undirected"
	}

	return "directed"
}

// GraphType classifies a whole graph by its live edge-kind counters.
type GraphType uint8

const (
	// TypeDirected: no undirected relations exist (the empty graph included).
	TypeDirected GraphType = iota

	// TypeUndirected: undirected relations exist and no directed ones do.
	TypeUndirected

	// TypeMixed: both kinds coexist.
	TypeMixed
)

// String returns "directed", "undirected", or "mixed".
func (t GraphType) String() string {
	switch t {
	case TypeUndirected:
		return "undirected"
	case TypeMixed:
		return "mixed"
	default:
		return "directed"
	}
}

// Edge is a read-only (From, To, Kind) relation triple, as enumerated by
// Graph.Edges. Undirected relations surface twice, once per mirror entry.
type Edge struct {
	// From is the source vertex identity.
	From string

	// To is the destination vertex identity.
	To string

	// Kind is the relation kind stored on the From record.
	Kind Kind
}

// color is the DFS visitation state of a vertex.
type color uint8

const (
	white color = iota // not visited yet
	gray               // on the current DFS recursion stack
	black              // fully explored
)

// Timestamp and distance sentinels for traversal-transient vertex state.
const (
	// unsetTime marks discovery/finish timestamps before any DFS run;
	// the shared DFS counter starts at 1, so 0 is never a real stamp.
	unsetTime = 0

	// unreachedDist marks vertices not reached by the most recent BFS run;
	// real distances are hop counts ≥ 0.
	unreachedDist = -1

	// noParent marks a vertex with no BFS tree parent. The empty identity is
	// reserved for this reason: mutators silently ignore it.
	noParent = ""
)

// vertex is one record per distinct vertex identity: its outgoing relation
// set plus traversal-transient state. Pure data; the Graph owns all behavior.
//
// DFS owns col/disc/fin; BFS owns dist/parent. The two field sets are
// disjoint so a run of one traversal never destroys the other's cached
// result (parents are identity back-references into Graph.vertices, never
// record pointers).
type vertex struct {
	id        string          // immutable identity
	relations map[string]Kind // neighbor identity → relation kind (outgoing)

	col  color // DFS visitation state
	disc int   // DFS discovery timestamp (unsetTime before any run)
	fin  int   // DFS finish timestamp (unsetTime before any run)

	dist   int    // hop count from the most recent BFS source
	parent string // identity of the BFS discoverer (noParent for roots)
}

// newVertex returns a fresh record with default transient state.
func newVertex(id string) *vertex {
	return &vertex{
		id:        id,
		relations: make(map[string]Kind),
		col:       white,
		disc:      unsetTime,
		fin:       unsetTime,
		dist:      unreachedDist,
		parent:    noParent,
	}
}

// Graph is the in-memory mixed graph engine.
//
// It owns a collection of vertex records keyed by identity, running totals
// of each relation kind, and a staleness cache so repeated cycle, ordering,
// and shortest-path queries do not recompute traversals unless the graph
// was mutated since the last run.
//
// Graph is single-writer: it defines no internal locking and assumes
// exclusive synchronous access by one caller.
type Graph struct {
	vertices map[string]*vertex // identity → record

	directedEdges   int // running total of directed relations
	undirectedEdges int // running total of undirected relations (one per pair)

	dfsValid  bool   // cached DFS results (cycle flag, finish times) are current
	bfsValid  bool   // cached BFS results (dist, parent) are current
	cycle     bool   // whether the last DFS run found a back-edge; valid iff dfsValid
	bfsSource string // source of the last BFS run; valid iff bfsValid
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithVertices pre-seeds the graph with bare vertices (no relations).
// Duplicate and empty identities are ignored.
func WithVertices(ids ...string) GraphOption {
	return func(g *Graph) {
		for _, id := range ids {
			if id != "" {
				if _, exists := g.vertices[id]; !exists {
					g.vertices[id] = newVertex(id)
				}
			}
		}
	}
}

// NewGraph creates an empty mixed graph and applies the given options.
// Complexity: O(1) plus option cost.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{vertices: make(map[string]*vertex)}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
