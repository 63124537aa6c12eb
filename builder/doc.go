// Package builder provides functional-options-style building blocks for
// assembling deterministic mixed-graph fixtures on top of mixgraph/core.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the vertex-ID scheme and the edge kind.
//   - Vertex-ID schemes (WithIDScheme implementations):
//     – DecimalID:      decimal strings ("0","1",…). The default.
//     – LetterID:       Excel-style letters ("A","Z","AA",…).
//   - Topology constructors (Constructor closures):
//     – Path(n):        simple chain 0→1→…→n-1.
//     – Cycle(n):       ring closing back to vertex 0.
//     – Star(n):        fixed hub "Center" with n-1 leaves.
//     – Complete(n):    one relation per unordered pair {i<j}.
//
// Guarantees:
//
//   - Determinism: same options and constructor order ⇒ identical graphs;
//     vertices and relations are emitted in stable ascending index order.
//   - Idempotence: re-running the same constructor on g will not duplicate
//     vertices or relations (core mutators are idempotent).
//   - Safety: constructors never panic; invalid parameters surface as
//     sentinel errors (ErrTooFewVertices, ErrUnknownKind) checked with
//     errors.Is.
//   - Kind policy: WithEdgeKind selects whether constructors emit directed
//     or undirected relations; the default is directed, under which Path,
//     Star, and Complete yield DAGs and Cycle yields a directed ring.
package builder
