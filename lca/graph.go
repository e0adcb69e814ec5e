package lca

import (
	"fmt"

	"github.com/katalvlaran/ancestry/bfs"
	"github.com/katalvlaran/ancestry/dfs"
)

// FindGraph returns the lowest common ancestor of a and b in g, treating root
// as the single source of a tree-shaped graph.
//
// Steps:
//  1. root, a and b must exist (ErrNodeNotFound).
//  2. With WithStrictAcyclic, any directed cycle is rejected (ErrCyclic).
//  3. If a != b, neither target may reach root (ErrMisRooted). A target equal
//     to root is exempt: the root is trivially its own ancestor.
//  4. Shortest paths root→a and root→b must exist (ErrDisconnected).
//  5. The last vertex shared by both paths from the start is the answer,
//     root when they part right after it.
func FindGraph(g RootedGraph, root, a, b string, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	o := buildOptions(opts)
	logger := o.Logger.With("root", root, "a", a, "b", b)

	for _, id := range []string{root, a, b} {
		if !g.HasVertex(id) {
			logger.Debug("vertex missing", "id", id)

			return "", fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	if o.StrictAcyclic {
		cycle, err := dfs.DetectCycle(g, dfs.WithCancelContext(o.Ctx))
		if err != nil {
			return "", err
		}
		if cycle != nil {
			logger.Debug("graph is cyclic", "cycle", cycle)

			return "", fmt.Errorf("%w: %v", ErrCyclic, cycle)
		}
	}

	bfsOpts := []bfs.Option{bfs.WithContext(o.Ctx)}
	if a != b {
		for _, target := range []string{a, b} {
			if target == root {
				continue
			}
			back, found, err := bfs.Between(g, target, root, bfsOpts...)
			if err != nil {
				return "", err
			}
			if found {
				logger.Debug("target reaches root", "path", back)

				return "", fmt.Errorf("%w: %v", ErrMisRooted, back)
			}
		}
	}

	p1, found1, err := bfs.Between(g, root, a, bfsOpts...)
	if err != nil {
		return "", err
	}
	p2, found2, err := bfs.Between(g, root, b, bfsOpts...)
	if err != nil {
		return "", err
	}
	if !found1 || !found2 {
		logger.Debug("target unreachable from root", "reaches_a", found1, "reaches_b", found2)

		return "", fmt.Errorf("%w: %q does not reach both %q and %q", ErrDisconnected, root, a, b)
	}

	lca := root
	if last, n := commonPrefix(p1, p2); n > 0 {
		lca = last
	}
	logger.Debug("lca found", "lca", lca, "path_a", p1, "path_b", p2)

	return lca, nil
}

// Graph is FindGraph without the reason: ok is false whenever FindGraph fails.
func Graph(g RootedGraph, root, a, b string, opts ...Option) (string, bool) {
	id, err := FindGraph(g, root, a, b, opts...)

	return id, err == nil
}
