package lca_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ancestry/builder"
	"github.com/katalvlaran/ancestry/core"
	"github.com/katalvlaran/ancestry/lca"
)

// descendants maps every vertex to the set it reaches, itself included.
func descendants(t *testing.T, g *core.Graph) map[string]map[string]bool {
	t.Helper()
	out := make(map[string]map[string]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		seen := map[string]bool{v: true}
		stack := []string{v}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			next, err := g.NeighborIDs(cur)
			require.NoError(t, err)
			for _, n := range next {
				if !seen[n] {
					seen[n] = true
					stack = append(stack, n)
				}
			}
		}
		out[v] = seen
	}

	return out
}

// TestFindDAG_RandomAgainstOracle checks, on seeded random DAGs, that the
// answer reaches both targets and that no other common ancestor lies below it.
func TestFindDAG_RandomAgainstOracle(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithSymbNumb("n")},
				builder.RandomDAG(14, 0.25))
			require.NoError(t, err)
			reach := descendants(t, g)
			ids := g.Vertices()

			for _, a := range ids {
				for _, b := range ids {
					var common []string
					for _, v := range ids {
						if reach[v][a] && reach[v][b] {
							common = append(common, v)
						}
					}

					got, ok := lca.DAG(g, a, b)
					if len(common) == 0 {
						assert.False(t, ok, "lca(%s,%s) should be absent", a, b)
						continue
					}
					require.True(t, ok, "lca(%s,%s) should exist", a, b)
					assert.True(t, reach[got][a] && reach[got][b], "lca(%s,%s)=%s is not common", a, b, got)
					for _, c := range common {
						if c != got {
							assert.False(t, reach[got][c], "lca(%s,%s)=%s has common ancestor %s below it", a, b, got, c)
						}
					}
				}
			}
		})
	}
}

// TestFindGraph_BinaryTreeAgainstHeap compares against heap-index arithmetic:
// the LCA of i and j is found by halving the larger index until they meet.
func TestFindGraph_BinaryTreeAgainstHeap(t *testing.T) {
	const depth = 5
	g, err := builder.BuildGraph(nil, nil, builder.BinaryTree(depth))
	require.NoError(t, err)

	last := builder.BinaryTreeLeaf(depth)
	for i := 1; i <= last; i += 3 {
		for j := 1; j <= last; j += 5 {
			x, y := i, j
			for x != y {
				if x > y {
					x /= 2
				} else {
					y /= 2
				}
			}
			got, err := lca.FindGraph(g, "1", fmt.Sprint(i), fmt.Sprint(j))
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprint(x), got, "lca(%d,%d)", i, j)

			dag, ok := lca.DAG(g, fmt.Sprint(i), fmt.Sprint(j))
			require.True(t, ok)
			assert.Equal(t, got, dag)
		}
	}
}

// TestFindGraph_CycleBuilder rejects every distinct pair on a pure cycle.
func TestFindGraph_CycleBuilder(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)

	_, err = lca.FindGraph(g, "0", "1", "2")
	assert.ErrorIs(t, err, lca.ErrMisRooted)
	_, err = lca.FindDAG(g, "1", "2")
	assert.ErrorIs(t, err, lca.ErrCyclic)
}
