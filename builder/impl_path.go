// File: impl_path.go
// Role: implementation of the Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order 0..n-1.
//   - Emits relations (i-1)→i for i=1..n-1 in stable increasing order,
//     of the configured kind.
//
// Complexity: O(n) vertices + O(n-1) relations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mixgraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n. Under the
// directed default the result is the chain 0→1→…→n-1, a DAG.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			cfg.connect(g, cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}
