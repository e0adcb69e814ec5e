package lca

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ancestry/bfs"
	"github.com/katalvlaran/ancestry/dfs"
)

// FindDAG returns the lowest common ancestor of a and b in a rootless
// directed acyclic graph.
//
// The graph is sorted topologically (a cycle yields ErrCyclic) and scanned
// from the ancestor-most end. Every vertex that reaches both targets replaces
// the current candidate, so the last one is the most specific ancestor.
// Reachability is re-checked for each vertex because topological order alone
// does not imply ancestry.
//
// A vertex placed after a target cannot reach it, so the scan stops at
// whichever target comes first in the order.
func FindDAG(g DAGGraph, a, b string, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	o := buildOptions(opts)
	logger := o.Logger.With("a", a, "b", b)

	for _, id := range []string{a, b} {
		if !g.HasVertex(id) {
			logger.Debug("vertex missing", "id", id)

			return "", fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(o.Ctx))
	if err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			logger.Debug("graph is cyclic", "err", err)

			return "", fmt.Errorf("%w: %v", ErrCyclic, err)
		}

		return "", err
	}

	bfsOpts := []bfs.Option{bfs.WithContext(o.Ctx)}
	lca, found := "", false
	for _, v := range order {
		okA, err := reaches(g, v, a, bfsOpts)
		if err != nil {
			return "", err
		}
		okB := false
		if okA {
			if okB, err = reaches(g, v, b, bfsOpts); err != nil {
				return "", err
			}
		}
		if okA && okB {
			lca, found = v, true
		}
		if v == a || v == b {
			break
		}
	}
	if !found {
		logger.Debug("no vertex reaches both targets")

		return "", fmt.Errorf("%w: %q and %q", ErrDisconnected, a, b)
	}
	logger.Debug("lca found", "lca", lca)

	return lca, nil
}

// DAG is FindDAG without the reason: ok is false whenever FindDAG fails.
func DAG(g DAGGraph, a, b string, opts ...Option) (string, bool) {
	id, err := FindDAG(g, a, b, opts...)

	return id, err == nil
}

func reaches(g bfs.Graph, from, to string, opts []bfs.Option) (bool, error) {
	_, ok, err := bfs.Between(g, from, to, opts...)

	return ok, err
}
