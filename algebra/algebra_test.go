package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euriklis/grapho/algebra"
	"github.com/euriklis/grapho/core"
)

// buildPath constructs the weighted chain over names with unit weights.
func buildPath(t *testing.T, names ...string) *core.Graph {
	t.Helper()
	g := core.NewNetwork()
	for _, name := range names {
		require.NoError(t, g.AddNode(name, nil))
	}
	for i := 0; i+1 < len(names); i++ {
		_, err := g.AddEdge(names[i], names[i+1], nil, core.WithWeight(1))
		require.NoError(t, err)
	}

	return g
}

func TestSubgraph_Induced(t *testing.T) {
	g := buildPath(t, "A", "B", "C", "D")

	sub, err := algebra.Subgraph(g, func(n core.NodeView) bool {
		return n.Name != "C"
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, sub.NodeNames())
	// Both edges touching C vanish with it.
	assert.Equal(t, 1, sub.Size())
	assert.True(t, sub.HasEdge("A", "B"))

	// The operand is untouched.
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size())
}

func TestSubgraph_NilPredicate(t *testing.T) {
	_, err := algebra.Subgraph(buildPath(t, "A"), nil)
	assert.ErrorIs(t, err, algebra.ErrNilPredicate)
}

func TestUnion_SkipsExisting(t *testing.T) {
	a := buildPath(t, "A", "B")
	b := core.NewNetwork()
	require.NoError(t, b.AddNode("B", "payload"))
	require.NoError(t, b.AddNode("C", nil))
	_, err := b.AddEdge("B", "C", nil, core.WithWeight(2))
	require.NoError(t, err)

	u, err := algebra.Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, u.NodeNames())
	assert.Equal(t, 2, u.Size())
	// The base operand's node wins on collision.
	n, ok := u.GetNode("B")
	require.True(t, ok)
	assert.Nil(t, n.Data)
}

func TestDifference_RemovesSharedStructure(t *testing.T) {
	a := buildPath(t, "A", "B", "C")
	b := core.NewNetwork()
	require.NoError(t, b.AddNode("C", nil))
	require.NoError(t, b.AddNode("Z", nil))

	d, err := algebra.Difference(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, d.NodeNames())
	assert.Equal(t, 1, d.Size())
	assert.True(t, d.HasEdge("A", "B"))
}

func TestKronecker_OrderAndSizeMultiply(t *testing.T) {
	a := buildPath(t, "A", "B", "C") // 3 nodes, 2 edges
	b := buildPath(t, "X", "Y")      // 2 nodes, 1 edge

	k, err := algebra.Kronecker(a, b)
	require.NoError(t, err)
	assert.Equal(t, 6, k.Order())
	assert.Equal(t, 2, k.Size())
	assert.True(t, k.HasEdge("A:X", "B:Y"))
	assert.True(t, k.HasEdge("B:X", "C:Y"))
}

func TestKronecker_WeightsMultiply(t *testing.T) {
	a := core.NewNetwork()
	require.NoError(t, a.AddNode("A", nil))
	require.NoError(t, a.AddNode("B", nil))
	_, err := a.AddEdge("A", "B", nil, core.WithWeight(2))
	require.NoError(t, err)

	b := core.NewNetwork()
	require.NoError(t, b.AddNode("X", nil))
	require.NoError(t, b.AddNode("Y", nil))
	_, err = b.AddEdge("X", "Y", nil, core.WithWeight(3))
	require.NoError(t, err)

	k, err := algebra.Kronecker(a, b, algebra.WithSeparator("·"))
	require.NoError(t, err)
	e, ok := k.Connection("A·X", "B·Y")
	require.True(t, ok)
	assert.Equal(t, 6.0, e.Weight)
}

func TestAdjacencyMatrix_Dense(t *testing.T) {
	g := core.NewNetwork()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(name, nil))
	}
	_, err := g.AddEdge("A", "B", nil, core.WithWeight(2))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", nil, core.WithWeight(3))
	require.NoError(t, err)

	m, names, err := algebra.AdjacencyMatrix(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names)
	assert.Equal(t, [][]float64{
		{0, 2, 0},
		{0, 0, 3},
		{0, 0, 0},
	}, m)
}

func TestAdjacencyMatrix_WeightFuncExcludes(t *testing.T) {
	g := core.NewNetwork()
	for _, name := range []string{"A", "B"} {
		require.NoError(t, g.AddNode(name, nil))
	}
	_, err := g.AddEdge("A", "B", "shadow", core.WithWeight(2))
	require.NoError(t, err)

	m, _, err := algebra.AdjacencyMatrix(g, algebra.WithWeightFunc(
		func(stored float64, data any, _ *core.Graph) float64 {
			if data == "shadow" {
				return 0
			}
			return stored
		}))
	require.NoError(t, err)
	assert.Zero(t, m[0][1])
}

func TestAlgebra_NilOperands(t *testing.T) {
	g := buildPath(t, "A")

	_, err := algebra.Union(nil, g)
	assert.ErrorIs(t, err, algebra.ErrGraphNil)
	_, err = algebra.Difference(g, nil)
	assert.ErrorIs(t, err, algebra.ErrGraphNil)
	_, err = algebra.Kronecker(nil, nil)
	assert.ErrorIs(t, err, algebra.ErrGraphNil)
	_, _, err = algebra.AdjacencyMatrix(nil)
	assert.ErrorIs(t, err, algebra.ErrGraphNil)
}
