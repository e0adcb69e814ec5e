package lca

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/ancestry/bfs"
	"github.com/katalvlaran/ancestry/bst"
)

// FindTree returns the lowest node that is an ancestor of both the shallowest
// node holding v1 and the shallowest node holding v2. A node is its own
// ancestor, so FindTree(t, v, v) is the node holding v.
//
// Both root-to-node paths are compared in full, so when one target is an
// ancestor of the other the shallower target itself is returned.
func FindTree[T cmp.Ordered](t *bst.Tree[T], v1, v2 T, opts ...Option) (*bst.Node[T], error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	o := buildOptions(opts)

	p1, err := treePath(t, v1, o)
	if err != nil {
		return nil, err
	}
	p2, err := treePath(t, v2, o)
	if err != nil {
		return nil, err
	}

	lca, n := commonPrefix(p1, p2)
	if n == 0 {
		o.Logger.Debug("tree paths share no prefix", "v1", v1, "v2", v2)

		return nil, fmt.Errorf("%w: %v and %v", ErrDisconnected, v1, v2)
	}

	return lca, nil
}

// Tree is FindTree without the reason: ok is false whenever FindTree fails.
func Tree[T cmp.Ordered](t *bst.Tree[T], v1, v2 T, opts ...Option) (*bst.Node[T], bool) {
	n, err := FindTree(t, v1, v2, opts...)

	return n, err == nil
}

// treePath returns the nodes from the root to the shallowest node holding v.
func treePath[T cmp.Ordered](t *bst.Tree[T], v T, o Options) ([]*bst.Node[T], error) {
	root := t.Root()
	if root == nil {
		o.Logger.Debug("tree is empty", "value", v)

		return nil, fmt.Errorf("%w: %v (empty tree)", ErrNodeNotFound, v)
	}

	path, ok, err := bfs.Search[*bst.Node[T]](root, t.Children,
		func(n *bst.Node[T]) bool { return n.Value == v },
		bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	if !ok {
		o.Logger.Debug("value not in tree", "value", v)

		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, v)
	}

	return path, nil
}
