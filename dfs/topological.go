// Package dfs provides whole-graph depth-first algorithms on directed graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
// If neighbor iteration fails, ErrNeighborFetch is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"fmt"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph Graph          // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[string]int // visitation state: White, Gray, Black
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are tried in g.Vertices() order and successors in NeighborIDs order,
// so for a deterministic graph the result is deterministic too.
//
// If g is nil, returns ErrGraphNil.
// If a cycle (including a self-loop) is detected, returns ErrCycleDetected.
// If neighbor lookup fails, returns ErrNeighborFetch.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order is a topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	// A Gray vertex is still on the stack: we came back along a back-edge.
	if t.state[id] == Gray {
		return fmt.Errorf("%w: back-edge into %q", ErrCycleDetected, id)
	}
	if t.state[id] == Black {
		return nil
	}
	t.state[id] = Gray

	neighbors, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nbr := range neighbors {
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
