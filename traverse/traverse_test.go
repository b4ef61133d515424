package traverse_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euriklis/grapho/core"
	"github.com/euriklis/grapho/traverse"
)

// buildDiamond constructs A→B, B→C, C→D, B→D.
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	for _, name := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(name, nil))
	}
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"B", "D"}} {
		_, err := g.AddEdge(pair[0], pair[1], nil)
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Order(t *testing.T) {
	g := buildDiamond(t)

	res, err := traverse.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 2, res.Depth["C"])
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, "B", res.Parent["D"])
}

func TestDFS_Order(t *testing.T) {
	g := buildDiamond(t)

	res, err := traverse.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
}

func TestTraversal_InvalidInput(t *testing.T) {
	_, err := traverse.BFS(nil, "A")
	assert.ErrorIs(t, err, traverse.ErrGraphNil)

	g := core.New()
	_, err = traverse.BFS(g, "A")
	assert.ErrorIs(t, err, traverse.ErrStartNotFound)
	_, err = traverse.DFS(g, "A")
	assert.ErrorIs(t, err, traverse.ErrStartNotFound)
}

func TestBFSAll_RestartsPerComponent(t *testing.T) {
	g := buildDiamond(t)
	require.NoError(t, g.AddNode("X", nil))
	require.NoError(t, g.AddNode("Y", nil))
	_, err := g.AddEdge("X", "Y", nil)
	require.NoError(t, err)

	res, err := traverse.BFSAll(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "X", "Y"}, res.Order)
	// Depths restart at each component root.
	assert.Equal(t, 0, res.Depth["X"])
	assert.Equal(t, 1, res.Depth["Y"])
}

func TestCallbackError_IsContainedAndTraversalContinues(t *testing.T) {
	g := buildDiamond(t)
	boom := errors.New("boom")

	var failed []string
	res, err := traverse.BFS(g, "A",
		traverse.WithOnVisit(func(name string) error {
			if name == "B" {
				return boom
			}
			return nil
		}),
		traverse.WithOnError(func(name string, visitErr error, cont *core.Graph) {
			assert.ErrorIs(t, visitErr, boom)
			assert.Same(t, g, cont)
			failed = append(failed, name)
		}),
	)
	require.NoError(t, err)
	// The failing node stays in the order and the rest are still visited.
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, []string{"B"}, failed)
}

func TestStopSentinel_TerminatesEarlyWithoutError(t *testing.T) {
	g := buildDiamond(t)

	res, err := traverse.BFS(g, "A", traverse.WithOnVisit(func(name string) error {
		if name == "B" {
			return traverse.Stop
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestContextCancellation_Aborts(t *testing.T) {
	g := buildDiamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := traverse.BFS(g, "A", traverse.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUndirectedProjection(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddNode("A", nil))
	require.NoError(t, g.AddNode("B", nil))
	_, err := g.AddEdge("B", "A", nil) // only B→A exists
	require.NoError(t, err)

	res, err := traverse.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)

	res, err = traverse.BFS(g, "A", traverse.WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestWeightFunc_SoftExcludesEdges(t *testing.T) {
	g := core.NewNetwork()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(name, nil))
	}
	_, err := g.AddEdge("A", "B", "blocked")
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", nil)
	require.NoError(t, err)

	res, err := traverse.BFS(g, "A", traverse.WithWeightFunc(
		func(stored float64, data any, _ *core.Graph) float64 {
			if data == "blocked" {
				return -1
			}
			return stored
		}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.Order)
	assert.Equal(t, 1, res.Skipped)
}

func TestFilterNeighbor(t *testing.T) {
	g := buildDiamond(t)

	res, err := traverse.DFS(g, "A", traverse.WithFilterNeighbor(
		func(_, neighbor string) bool { return neighbor != "C" }))
	require.NoError(t, err)
	assert.NotContains(t, res.Order, "C")
	assert.Equal(t, 1, res.Skipped)
}

// countingQueue proves the FIFO collaborator seam is substitutable.
type countingQueue struct {
	items    []string
	enqueues int
}

func (q *countingQueue) Enqueue(name string) {
	q.enqueues++
	q.items = append(q.items, name)
}

func (q *countingQueue) Dequeue() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	head := q.items[0]
	q.items = q.items[1:]

	return head, true
}

func (q *countingQueue) Empty() bool { return len(q.items) == 0 }

func TestQueueSeam_Substitutable(t *testing.T) {
	g := buildDiamond(t)
	q := &countingQueue{}

	res, err := traverse.BFS(g, "A", traverse.WithQueue(q))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 4, q.enqueues)
}

func TestPathTo(t *testing.T) {
	g := buildDiamond(t)

	res, err := traverse.BFS(g, "A")
	require.NoError(t, err)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)

	_, err = res.PathTo("nope")
	assert.Error(t, err)
}
