package core_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euriklis/grapho/core"
)

// buildWeightedSample constructs a small weighted network with payloads,
// node values, and container state.
func buildWeightedSample(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewNetwork(core.WithState(map[string]any{"rev": "1"}))
	require.NoError(t, g.AddNode("A", "alpha", core.WithValue(1)))
	require.NoError(t, g.AddNode("B", "beta"))
	require.NoError(t, g.AddNode("C", nil, core.WithValue(-2)))
	_, err := g.AddEdge("A", "B", "ab", core.WithWeight(2.5))
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", nil, core.WithWeight(0))
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", nil)
	require.NoError(t, err)

	return g
}

func TestSnapshot_RoundTrip(t *testing.T) {
	g := buildWeightedSample(t)

	first := g.Snapshot()
	rebuilt, err := core.FromSnapshot(first, core.WithWeighted())
	require.NoError(t, err)

	// Serialize → reconstruct → serialize yields identical content.
	second := rebuilt.Snapshot()
	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.Edges, second.Edges)
	assert.Equal(t, first.State, second.State)

	// Zero weight survives the trip (not collapsed to the default).
	e, ok := rebuilt.Connection("B", "C")
	require.True(t, ok)
	assert.Equal(t, float64(0), e.Weight)
}

func TestSnapshot_Ordering(t *testing.T) {
	g := core.New()
	for _, name := range []string{"z", "m", "a"} {
		require.NoError(t, g.AddNode(name, nil))
	}
	_, err := g.AddEdge("z", "a", nil)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "m", nil)
	require.NoError(t, err)

	s := g.Snapshot()
	assert.Equal(t, "a", s.Nodes[0].Name)
	assert.Equal(t, "m", s.Nodes[1].Name)
	assert.Equal(t, "z", s.Nodes[2].Name)
	assert.Equal(t, "a", s.Edges[0].Source)
	assert.Equal(t, "z", s.Edges[1].Source)
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	g := buildWeightedSample(t)

	data, err := core.Marshal(g)
	require.NoError(t, err)

	rebuilt, err := core.Read(bytes.NewReader(data), core.WithWeighted())
	require.NoError(t, err)

	again, err := core.Marshal(rebuilt)
	require.NoError(t, err)
	// State decodes through JSON as map[string]any on both sides, so the
	// byte form is the equality witness here.
	assert.Equal(t, string(data), string(again))
}

func TestFromSnapshot_BadEdge(t *testing.T) {
	s := core.Snapshot{
		Nodes: []core.NodeSnapshot{{Name: "A"}},
		Edges: []core.EdgeSnapshot{{Source: "A", Target: "missing", Weight: 1}},
	}
	_, err := core.FromSnapshot(s)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
