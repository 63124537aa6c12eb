package builder_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mixgraph/builder"
	"github.com/katalvlaran/mixgraph/core"
)

// ExampleBuildGraph assembles a directed chain and reads its ordering.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	order, err := g.TopologicalSort()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(order, " "))

	// Output:
	// 0 1 2 3
}

// ExampleWithEdgeKind builds the undirected triangle C_3 — the smallest
// real undirected cycle.
func ExampleWithEdgeKind() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithEdgeKind(core.KindUndirected)},
		builder.Cycle(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Type())
	fmt.Println(g.HasCycle())

	// Output:
	// undirected
	// true
}
