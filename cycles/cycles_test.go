package cycles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euriklis/grapho/core"
	"github.com/euriklis/grapho/cycles"
)

// buildRing constructs the directed cycle over the given names, in order.
func buildRing(t *testing.T, names ...string) *core.Graph {
	t.Helper()
	g := core.New()
	for _, name := range names {
		require.NoError(t, g.AddNode(name, nil))
	}
	for i, name := range names {
		_, err := g.AddEdge(name, names[(i+1)%len(names)], nil)
		require.NoError(t, err)
	}

	return g
}

func TestDetect_NoCycle(t *testing.T) {
	g := core.New()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(name, nil))
	}
	_, err := g.AddEdge("A", "B", nil)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", nil)
	require.NoError(t, err)

	found, cyc, err := cycles.Detect(g)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cyc)
}

func TestDetect_SingleCycle_RotationsDeduped(t *testing.T) {
	g := buildRing(t, "B", "C", "A") // edges B→C, C→A, A→B

	found, cyc, err := cycles.Detect(g)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, cyc, 1)
	// Canonical minimal rotation regardless of discovery point.
	assert.Equal(t, []string{"A", "B", "C"}, cyc[0])
}

func TestDetect_SelfLoop(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddNode("A", nil))
	_, err := g.AddEdge("A", "A", nil)
	require.NoError(t, err)

	found, cyc, err := cycles.Detect(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, [][]string{{"A"}}, cyc)
}

func TestDetect_TwoIndependentCycles(t *testing.T) {
	g := buildRing(t, "A", "B")
	require.NoError(t, g.AddNode("X", nil))
	require.NoError(t, g.AddNode("Y", nil))
	_, err := g.AddEdge("X", "Y", nil)
	require.NoError(t, err)
	_, err = g.AddEdge("Y", "X", nil)
	require.NoError(t, err)

	found, cyc, err := cycles.Detect(g)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, [][]string{{"A", "B"}, {"X", "Y"}}, cyc)
}

func TestDetect_WeightFuncBreaksCycle(t *testing.T) {
	g := core.NewNetwork()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(name, nil))
	}
	_, err := g.AddEdge("A", "B", nil)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", nil)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", "back")
	require.NoError(t, err)

	found, _, err := cycles.Detect(g, cycles.WithWeightFunc(
		func(stored float64, data any, _ *core.Graph) float64 {
			if data == "back" {
				return 0
			}
			return stored
		}))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHamiltonian_Ring(t *testing.T) {
	g := buildRing(t, "A", "B", "C", "D")

	path, found, err := cycles.Hamiltonian(g)
	require.NoError(t, err)
	require.True(t, found)
	// A 5-element sequence returning to its start, visiting the other 3
	// nodes exactly once.
	require.Len(t, path, 5)
	assert.Equal(t, path[0], path[4])
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, path[:4])
}

func TestHamiltonian_NotFound(t *testing.T) {
	// A path graph has no Hamiltonian cycle.
	g := core.New()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(name, nil))
	}
	_, err := g.AddEdge("A", "B", nil)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", nil)
	require.NoError(t, err)

	path, found, err := cycles.Hamiltonian(g)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestHamiltonian_EmptyGraph(t *testing.T) {
	path, found, err := cycles.Hamiltonian(core.New())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, path)
}

func TestHamiltonian_RequiresDirection(t *testing.T) {
	// The ring exists only clockwise; reversing one edge kills the cycle.
	g := buildRing(t, "A", "B", "C", "D")
	require.NoError(t, g.RemoveEdge("C", "D"))
	_, err := g.AddEdge("D", "C", nil)
	require.NoError(t, err)

	_, found, err := cycles.Hamiltonian(g)
	require.NoError(t, err)
	assert.False(t, found)
}
