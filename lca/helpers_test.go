package lca_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ancestry/core"
)

// build returns a graph holding the given "from→to" pairs.
func build(t testing.TB, loops bool, edges ...[2]string) *core.Graph {
	t.Helper()
	var opts []core.GraphOption
	if loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// rootedEdges is the tree-shaped graph root→{1,2}, 1→{3,4}, 2→{5,6}.
var rootedEdges = [][2]string{
	{"root", "1"}, {"root", "2"},
	{"1", "3"}, {"1", "4"},
	{"2", "5"}, {"2", "6"},
}

// dagEdges is the rootless DAG 1→2→{3,4}, 3→5→7, 4→6→7, 7→8.
var dagEdges = [][2]string{
	{"1", "2"}, {"2", "3"}, {"2", "4"}, {"3", "5"},
	{"4", "6"}, {"5", "7"}, {"6", "7"}, {"7", "8"},
}
