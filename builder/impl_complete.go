// File: impl_complete.go
// Role: implementation of the Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order 0..n-1.
//   - Emits one relation per unordered pair {i<j}, i ascending then j,
//     of the configured kind: the undirected K_n, or under the directed
//     default an acyclic tournament (every relation points low→high).
//
// Complexity: O(n) vertices + O(n²) relations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mixgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete topology K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cfg.connect(g, cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}
