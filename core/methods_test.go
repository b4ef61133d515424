package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euriklis/grapho/core"
)

// buildSquare constructs the directed square A→B, B→D, A→C, C→D.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	for _, name := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(name, nil))
	}
	for _, pair := range [][2]string{{"A", "B"}, {"B", "D"}, {"A", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(pair[0], pair[1], nil)
		require.NoError(t, err)
	}

	return g
}

func TestAddNode_GetNode_RoundTrip(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddNode("A", "payload"))

	v, ok := g.GetNode("A")
	require.True(t, ok)
	assert.Equal(t, "A", v.Name)
	assert.Equal(t, "payload", v.Data)
}

func TestAddNode_Errors(t *testing.T) {
	g := core.New()
	assert.ErrorIs(t, g.AddNode("", nil), core.ErrEmptyNodeName)

	require.NoError(t, g.AddNode("A", nil))
	assert.ErrorIs(t, g.AddNode("A", nil), core.ErrDuplicateNode)
}

func TestAddNode_ValueOption(t *testing.T) {
	g := core.NewNetwork()
	require.NoError(t, g.AddNode("A", nil, core.WithValue(3.5)))

	v, ok := g.GetNode("A")
	require.True(t, ok)
	assert.Equal(t, 3.5, v.Value)
}

func TestNodeFactory_Seam(t *testing.T) {
	// A custom factory stamps every node with a flavor marker.
	factory := func(name string, data any) *core.Node {
		n := core.DefaultNodeFactory(name, data)
		n.Value = 7
		return n
	}
	g := core.New(core.WithNodeFactory(factory))
	require.NoError(t, g.AddNode("A", nil))

	v, ok := g.GetNode("A")
	require.True(t, ok)
	assert.Equal(t, float64(7), v.Value)
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddNode("A", nil))
	require.NoError(t, g.AddNode("B", nil))

	_, err := g.AddEdge("A", "X", nil)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.AddEdge("X", "B", nil)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.AddEdge("A", "B", nil)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", nil)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	// The opposite orientation is a distinct edge.
	_, err = g.AddEdge("B", "A", nil)
	assert.NoError(t, err)
}

func TestAddEdge_WeightPolicy(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddNode("A", nil))
	require.NoError(t, g.AddNode("B", nil))

	_, err := g.AddEdge("A", "B", nil, core.WithWeight(4))
	assert.ErrorIs(t, err, core.ErrBadWeight)

	n := core.NewNetwork()
	require.NoError(t, n.AddNode("A", nil))
	require.NoError(t, n.AddNode("B", nil))
	_, err = n.AddEdge("A", "B", nil, core.WithWeight(4))
	require.NoError(t, err)

	e, ok := n.Connection("A", "B")
	require.True(t, ok)
	assert.Equal(t, float64(4), e.Weight)
}

func TestAddEdge_DefaultWeight(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddNode("A", nil))
	require.NoError(t, n.AddNode("B", nil))
	_, err := n.AddEdge("A", "B", nil)
	require.NoError(t, err)

	e, ok := n.Connection("A", "B")
	require.True(t, ok)
	assert.Equal(t, core.DefaultEdgeWeight, e.Weight)
}

func TestRemoveEdge_RestoresDegrees(t *testing.T) {
	g := buildSquare(t)

	outA, err := g.OutDegree("A")
	require.NoError(t, err)
	inB, err := g.InDegree("B")
	require.NoError(t, err)

	_, err = g.AddEdge("C", "B", nil)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge("C", "B"))

	outA2, err := g.OutDegree("A")
	require.NoError(t, err)
	inB2, err := g.InDegree("B")
	require.NoError(t, err)
	assert.Equal(t, outA, outA2)
	assert.Equal(t, inB, inB2)

	assert.ErrorIs(t, g.RemoveEdge("C", "B"), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge("C", "X"), core.ErrNodeNotFound)
}

func TestRemoveNode_DetachesIncidentEdges(t *testing.T) {
	g := buildSquare(t)

	// Removing B must drop A→B and B→D from both endpoints.
	v, err := g.RemoveNode("B")
	require.NoError(t, err)
	assert.Equal(t, "B", v.Name)

	_, ok := g.GetNode("B")
	assert.False(t, ok)
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "D"))

	outA, err := g.OutDegree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, outA) // only A→C left
	inD, err := g.InDegree("D")
	require.NoError(t, err)
	assert.Equal(t, 1, inD) // only C→D left

	_, err = g.RemoveNode("B")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestSnapshotGetters_AreDetached(t *testing.T) {
	g := buildSquare(t)

	edges := g.Edges()
	require.Len(t, edges, 4)
	// Sorted by (From, To).
	assert.Equal(t, "A", edges[0].From)
	assert.Equal(t, "B", edges[0].To)

	// Mutating the copies must not leak into the container.
	edges[0].To = "Z"
	assert.True(t, g.HasEdge("A", "B"))

	nodes := g.Nodes()
	require.Len(t, nodes, 4)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.NodeNames())
}

func TestFindConnections(t *testing.T) {
	g := buildSquare(t)

	all, err := g.FindConnections("A", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	toC, err := g.FindConnections("A", func(e core.Edge) bool { return e.To == "C" })
	require.NoError(t, err)
	require.Len(t, toC, 1)
	assert.Equal(t, "C", toC[0].To)

	_, err = g.FindConnections("X", nil)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestUndirectedNeighbors(t *testing.T) {
	g := buildSquare(t)

	nbrs, err := g.UndirectedNeighbors("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbrs)
}

func TestState(t *testing.T) {
	g := core.New(core.WithState("initial"))
	assert.Equal(t, "initial", g.State())

	g.SetState(42)
	assert.Equal(t, 42, g.State())
}

func TestClone_IsDeep(t *testing.T) {
	g := buildSquare(t)
	g.SetState("s")

	c := g.Clone()
	assert.Equal(t, g.Order(), c.Order())
	assert.Equal(t, g.Size(), c.Size())
	assert.Equal(t, "s", c.State())

	// Mutating the clone leaves the original untouched.
	_, err := c.RemoveNode("A")
	require.NoError(t, err)
	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasEdge("A", "B"))
}

func TestClear_PreservesConfiguration(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddNode("A", nil))
	n.Clear()

	assert.Zero(t, n.Order())
	assert.True(t, n.Weighted())
	// Weighted policy survives: custom weights still accepted.
	require.NoError(t, n.AddNode("A", nil))
	require.NoError(t, n.AddNode("B", nil))
	_, err := n.AddEdge("A", "B", nil, core.WithWeight(2))
	assert.NoError(t, err)
}
