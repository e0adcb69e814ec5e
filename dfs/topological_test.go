package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ancestry/core"
	"github.com/katalvlaran/ancestry/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// chain adds a path through the given vertices.
func chain(t *testing.T, g *core.Graph, vs ...string) {
	t.Helper()
	for i := 0; i+1 < len(vs); i++ {
		_, err := g.AddEdge(vs[i], vs[i+1])
		require.NoError(t, err)
	}
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_EmptyGraph covers a graph with no vertices.
func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewGraph())
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_NoEdges checks that isolated vertices are all emitted.
func TestTopo_NoEdges(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_ = g.AddVertex("C")

	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, order)
}

// TestTopo_SimpleChain verifies linear chain A→B→C yields [A,B,C].
func TestTopo_SimpleChain(t *testing.T) {
	g := core.NewGraph()
	chain(t, g, "A", "B", "C")

	order, err := dfs.TopologicalSort(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestTopo_DeterministicDAG pins the exact order for the reference DAG
// 1→2, 2→3, 2→4, 3→5, 4→6, 5→7, 6→7, 7→8.
func TestTopo_DeterministicDAG(t *testing.T) {
	g := core.NewGraph()
	chain(t, g, "1", "2", "3", "5", "7", "8")
	chain(t, g, "2", "4", "6", "7")

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "6", "3", "5", "7", "8"}, order)
}

// TestTopo_ComplexDAG builds a DAG of 10 vertices with cross-links and ensures validity.
func TestTopo_ComplexDAG(t *testing.T) {
	g := core.NewGraph()
	edges := [][2]string{
		{"V1", "V3"}, {"V1", "V2"}, {"V2", "V5"}, {"V3", "V5"},
		{"V2", "V4"}, {"V4", "V6"}, {"V5", "V7"}, {"V6", "V8"},
		{"V7", "V9"}, {"V8", "V10"},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Len(t, order, 10)
	for _, e := range edges {
		assert.Less(t, position(order, e[0]), position(order, e[1]),
			"edge %s→%s should be respected", e[0], e[1])
	}
}

// TestTopo_Disconnected verifies that every component is ordered.
func TestTopo_Disconnected(t *testing.T) {
	g := core.NewGraph()
	chain(t, g, "X", "Y")
	chain(t, g, "A", "B")

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Less(t, position(order, "X"), position(order, "Y"))
	assert.Less(t, position(order, "A"), position(order, "B"))
	assert.ElementsMatch(t, []string{"X", "Y", "A", "B"}, order)
}

// TestTopo_Cycle ensures cycles and self-loops yield ErrCycleDetected.
func TestTopo_Cycle(t *testing.T) {
	g := core.NewGraph()
	chain(t, g, "a", "b", "c", "d", "e", "f", "a")
	order, err := dfs.TopologicalSort(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	lg := core.NewGraph(core.WithLoops())
	_, _ = lg.AddEdge("x", "x")
	_, err = dfs.TopologicalSort(lg)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_Cancelled returns the context error.
func TestTopo_Cancelled(t *testing.T) {
	g := core.NewGraph()
	chain(t, g, "A", "B")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// brokenGraph fails every neighbor lookup.
type brokenGraph struct{}

func (brokenGraph) Vertices() []string { return []string{"A"} }
func (brokenGraph) NeighborIDs(string) ([]string, error) {
	return nil, errors.New("storage offline")
}

// TestTopo_NeighborFetch wraps collaborator failures.
func TestTopo_NeighborFetch(t *testing.T) {
	_, err := dfs.TopologicalSort(brokenGraph{})
	assert.ErrorIs(t, err, dfs.ErrNeighborFetch)

	_, err = dfs.DetectCycle(brokenGraph{})
	assert.ErrorIs(t, err, dfs.ErrNeighborFetch)
}
