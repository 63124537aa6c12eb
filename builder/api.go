// File: api.go
// Role: thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go and return
//     Constructor closures.
//   - Functional options resolve into an immutable builderConfig
//     (no global state).
//   - Determinism: same options and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mixgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors, and emit vertices and relations in a stable documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) resolution plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	cfg := newBuilderConfig(bopts...)
	if cfg.kind != core.KindDirected && cfg.kind != core.KindUndirected {
		return nil, fmt.Errorf("BuildGraph: kind=%d: %w", cfg.kind, ErrUnknownKind)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
