// File: impl_star.go
// Role: implementation of the Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub vertex with fixed ID "Center" (documented design
//     choice), then leaves via cfg.idFn for i = 1..n-1 in ascending order.
//   - Emits spokes Center→leaf[i] in stable leaf order, of the configured
//     kind; directed stars are DAGs, undirected stars are trees.
//
// Complexity: O(n) vertices + O(n-1) relations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mixgraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// centerVertexID is the fixed hub identity of every star.
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		g.AddVertex(centerVertexID)
		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)
			g.AddVertex(leafID)
			cfg.connect(g, centerVertexID, leafID)
		}

		return nil
	}
}
