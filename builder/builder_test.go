package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mixgraph/builder"
	"github.com/katalvlaran/mixgraph/core"
)

// TestBuildGraph_PathDirected: the default kind yields the chain DAG.
func TestBuildGraph_PathDirected(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
	assert.Equal(t, 3, g.DirectedEdgeCount())
	assert.Equal(t, core.TypeDirected, g.Type())
	assert.False(t, g.HasCycle())
	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Path("0", "3"))

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, order)
}

// TestBuildGraph_PathUndirected: WithEdgeKind switches the emitted kind.
func TestBuildGraph_PathUndirected(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithEdgeKind(core.KindUndirected)},
		builder.Path(3))
	require.NoError(t, err)

	assert.Equal(t, 2, g.UndirectedEdgeCount())
	assert.Equal(t, core.TypeUndirected, g.Type())
	assert.False(t, g.HasCycle()) // a chain, not a ring
	assert.Equal(t, []string{"2", "1", "0"}, g.Path("2", "0"))
}

// TestBuildGraph_Cycle: cyclic in either kind.
func TestBuildGraph_Cycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.DirectedEdgeCount())
	assert.True(t, g.HasCycle())

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithEdgeKind(core.KindUndirected)},
		builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.UndirectedEdgeCount())
	assert.True(t, g.HasCycle())
}

// TestBuildGraph_Star: one hub, n-1 spokes, acyclic.
func TestBuildGraph_Star(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.True(t, g.HasVertex("Center"))
	assert.Equal(t, []string{"1", "2", "3", "4"}, g.Neighbors("Center"))
	assert.Equal(t, 4, g.DirectedEdgeCount())
	assert.False(t, g.HasCycle())
}

// TestBuildGraph_Complete: C(n,2) relations; the directed variant is an
// acyclic low→high tournament.
func TestBuildGraph_Complete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 6, g.DirectedEdgeCount())
	assert.False(t, g.HasCycle())

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, order)

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithEdgeKind(core.KindUndirected)},
		builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 6, g.UndirectedEdgeCount())
	assert.True(t, g.HasCycle())
}

// TestBuildGraph_Compose: constructors share vertices across one graph.
func TestBuildGraph_Compose(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Star(3))
	require.NoError(t, err)

	// Path contributes 0,1,2; Star contributes Center plus leaves 1,2.
	assert.Equal(t, []string{"0", "1", "2", "Center"}, g.Vertices())
	assert.Equal(t, 4, g.DirectedEdgeCount())
}

// TestBuildGraph_IDScheme: LetterID relabels every constructor vertex.
func TestBuildGraph_IDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.LetterID)},
		builder.Path(3))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, []string{"A", "B", "C"}, g.Path("A", "C"))
}

// TestBuildGraph_WithVertices: graph options pre-seed extra identities.
func TestBuildGraph_WithVertices(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithVertices("spare")},
		nil, builder.Path(2))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "spare"}, g.Vertices())
}

// TestBuildGraph_Errors covers the sentinel surface.
func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Complete(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithEdgeKind(core.Kind(9))},
		builder.Path(2))
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
}

// TestIDSchemes pins both index→identity mappings.
func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "0", builder.DecimalID(0))
	assert.Equal(t, "12", builder.DecimalID(12))

	assert.Equal(t, "A", builder.LetterID(0))
	assert.Equal(t, "Z", builder.LetterID(25))
	assert.Equal(t, "AA", builder.LetterID(26))
	assert.Equal(t, "AB", builder.LetterID(27))
}
