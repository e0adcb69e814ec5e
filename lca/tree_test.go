package lca_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ancestry/bst"
	"github.com/katalvlaran/ancestry/lca"
)

func TestFindTree_Scenario(t *testing.T) {
	tr := bst.New(3, 1, 2, 4, 5, 6)

	cases := []struct {
		v1, v2, want int
	}{
		{2, 1, 1}, // 1 is the parent of 2
		{2, 4, 3}, // opposite sides of the root
		{4, 5, 4},
		{4, 6, 4},
		{5, 6, 5},
		{1, 6, 3},
		{3, 3, 3},
	}
	for _, tc := range cases {
		got, err := lca.FindTree(tr, tc.v1, tc.v2)
		require.NoError(t, err, "lca(%d,%d)", tc.v1, tc.v2)
		assert.Equal(t, tc.want, got.Value, "lca(%d,%d)", tc.v1, tc.v2)
	}
}

func TestFindTree_RightSkewedChain(t *testing.T) {
	tr := bst.New(1, 2, 3)

	n, ok := lca.Tree(tr, 2, 3)
	require.True(t, ok)
	assert.Equal(t, 2, n.Value)

	n, ok = lca.Tree(tr, 1, 3)
	require.True(t, ok)
	assert.Same(t, tr.Root(), n)
}

func TestFindTree_Absent(t *testing.T) {
	_, err := lca.FindTree[int](nil, 1, 2)
	assert.ErrorIs(t, err, lca.ErrTreeNil)

	empty := bst.New[int]()
	_, err = lca.FindTree(empty, 1, 2)
	assert.ErrorIs(t, err, lca.ErrNodeNotFound)

	tr := bst.New(1, 2, 3)
	_, err = lca.FindTree(tr, 4, 2)
	assert.ErrorIs(t, err, lca.ErrNodeNotFound)
	_, err = lca.FindTree(tr, 2, 4)
	assert.ErrorIs(t, err, lca.ErrNodeNotFound)

	_, ok := lca.Tree(tr, 1, 4)
	assert.False(t, ok)
}

func TestFindTree_Properties(t *testing.T) {
	values := []int{50, 30, 70, 20, 40, 60, 80, 35, 45, 65}
	tr := bst.New(values...)

	for _, a := range values {
		self, err := lca.FindTree(tr, a, a)
		require.NoError(t, err)
		assert.Same(t, tr.Find(a), self, "self-lca %d", a)

		for _, b := range values {
			ab, err := lca.FindTree(tr, a, b)
			require.NoError(t, err)
			ba, err := lca.FindTree(tr, b, a)
			require.NoError(t, err)
			assert.Same(t, ab, ba, "symmetry %d,%d", a, b)
		}
	}

	// root dominance
	for _, l := range []int{30, 20, 40, 35, 45} {
		for _, r := range []int{70, 60, 80, 65} {
			n, err := lca.FindTree(tr, l, r)
			require.NoError(t, err)
			assert.Same(t, tr.Root(), n)
		}
	}

	// ancestor absorption
	for _, pair := range [][2]int{{30, 45}, {40, 35}, {70, 65}, {50, 65}} {
		n, err := lca.FindTree(tr, pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, pair[0], n.Value)
	}
}

func TestFindTree_Strings(t *testing.T) {
	tr := bst.New("m", "c", "x", "a", "e")
	n, ok := lca.Tree(tr, "a", "e")
	require.True(t, ok)
	assert.Equal(t, "c", n.Value)
}

func TestFindTree_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lca.FindTree(bst.New(1, 2), 1, 2, lca.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
