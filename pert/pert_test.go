package pert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euriklis/grapho/core"
	"github.com/euriklis/grapho/pert"
)

// buildProject constructs an activity network with two routes from start
// to end; the lower route is the critical one.
//
//	S --2--> A --4--> E      (6)
//	S --3--> B --5--> E      (8, critical)
func buildProject(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewNetwork()
	for _, name := range []string{"S", "A", "B", "E"} {
		require.NoError(t, g.AddNode(name, nil))
	}
	edges := []struct {
		from, to string
		duration float64
	}{
		{"S", "A", 2},
		{"A", "E", 4},
		{"S", "B", 3},
		{"B", "E", 5},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, nil, core.WithWeight(e.duration))
		require.NoError(t, err)
	}

	return g
}

func TestPERT_EarliestTimes(t *testing.T) {
	g := buildProject(t)

	earliest, ok, err := pert.PERT(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]float64{
		"S": 0,
		"A": 2,
		"B": 3,
		"E": 8,
	}, earliest)
}

func TestCPM_CriticalPath(t *testing.T) {
	g := buildProject(t)

	s, ok, err := pert.CPM(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8.0, s.Duration)
	assert.Equal(t, []string{"S", "B", "E"}, s.Path)
}

func TestPERT_CycleHasNoSchedule(t *testing.T) {
	g := buildProject(t)
	_, err := g.AddEdge("E", "S", nil, core.WithWeight(1))
	require.NoError(t, err)

	earliest, ok, err := pert.PERT(g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, earliest)

	_, ok, err = pert.CPM(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPERT_WeightFuncExcludesActivity(t *testing.T) {
	g := buildProject(t)

	// Dropping the critical B→E activity promotes the upper route.
	s, ok, err := pert.CPM(g, pert.WithWeightFunc(
		func(stored float64, _ any, _ *core.Graph) float64 {
			if stored == 5 {
				return 0
			}
			return stored
		}))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 6.0, s.Duration)
	assert.Equal(t, []string{"S", "A", "E"}, s.Path)
}

func TestPERT_EmptyAndNil(t *testing.T) {
	earliest, ok, err := pert.PERT(core.NewNetwork())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, earliest)

	s, ok, err := pert.CPM(core.NewNetwork())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, s.Duration)
	assert.Empty(t, s.Path)

	_, _, err = pert.PERT(nil)
	assert.ErrorIs(t, err, pert.ErrGraphNil)
}

func TestPERT_IsolatedMilestoneStaysAtZero(t *testing.T) {
	g := buildProject(t)
	require.NoError(t, g.AddNode("idle", nil))

	earliest, ok, err := pert.PERT(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, earliest["idle"])
}
