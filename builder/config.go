// File: config.go
// Role: internal configuration, deterministic defaults, and the public
//       functional options.
//
// Deterministic defaults (no surprises):
//   - idFn = DecimalID ("0","1","2",...)
//   - kind = core.KindDirected

package builder

import (
	"strconv"

	"github.com/katalvlaran/mixgraph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index → identity (deterministic).
	idFn func(int) string

	// Relation kind emitted by every constructor edge.
	kind core.Kind
}

// BuilderOption mutates the builder configuration before use.
type BuilderOption func(*builderConfig)

// WithIDScheme overrides the vertex-ID scheme. A nil fn keeps the default.
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// WithEdgeKind selects the relation kind constructors emit
// (core.KindDirected or core.KindUndirected).
func WithEdgeKind(k core.Kind) BuilderOption {
	return func(cfg *builderConfig) { cfg.kind = k }
}

// newBuilderConfig resolves deterministic defaults, then applies options
// in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DecimalID,
		kind: core.KindDirected,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// connect emits one relation of the configured kind. Kind validity is
// checked once by BuildGraph, so the default branch is the directed one.
func (cfg builderConfig) connect(g *core.Graph, from, to string) {
	if cfg.kind == core.KindUndirected {
		g.ConnectUndirected(from, to)
		return
	}
	g.ConnectDirected(from, to)
}

// DecimalID maps an index to its decimal string: 0→"0", 1→"1", ...
func DecimalID(i int) string {
	return strconv.Itoa(i)
}

// LetterID maps an index to Excel-style letters: 0→"A", 25→"Z", 26→"AA".
func LetterID(i int) string {
	buf := make([]byte, 0, 4)
	for i >= 0 {
		buf = append(buf, byte('A'+i%26))
		i = i/26 - 1
	}
	// Digits were produced least significant first.
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}
