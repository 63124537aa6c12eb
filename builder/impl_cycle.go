// File: impl_cycle.go
// Role: implementation of the Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices): C_3 is the smallest simple cycle.
//   - Adds vertices via cfg.idFn in ascending index order 0..n-1.
//   - Emits ring relations i→(i+1 mod n) for i=0..n-1 in stable order.
//   - The result is cyclic for either kind; HasCycle() reports true.
//
// Complexity: O(n) vertices + O(n) relations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mixgraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			cfg.connect(g, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}
