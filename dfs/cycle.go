package dfs

import "fmt"

// cycleFinder holds the colouring and the current DFS path.
type cycleFinder struct {
	graph Graph
	opts  topoOptions
	state map[string]int
	path  []string
	cycle []string
}

// DetectCycle returns one directed cycle of g as a closed walk
// [v0, v1, ..., v0], or nil when g is acyclic. A self-loop on v is
// reported as [v, v].
//
// The witness is the first back-edge met when roots are tried in
// g.Vertices() order, so it is deterministic for a deterministic graph.
//
// Complexity: O(V + E).
func DetectCycle(g Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	f := &cycleFinder{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if f.state[v] != White {
			continue
		}
		if err := f.visit(v); err != nil {
			return nil, fmt.Errorf("dfs: DetectCycle: %w", err)
		}
		if f.cycle != nil {
			return f.cycle, nil
		}
	}

	return nil, nil
}

// visit explores id; it stops descending once a cycle has been recorded.
func (f *cycleFinder) visit(id string) error {
	select {
	case <-f.opts.ctx.Done():
		return f.opts.ctx.Err()
	default:
	}

	f.state[id] = Gray
	f.path = append(f.path, id)

	neighbors, err := f.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nbr := range neighbors {
		switch f.state[nbr] {
		case White:
			if err = f.visit(nbr); err != nil {
				return err
			}
		case Gray:
			idx := indexOf(f.path, nbr)
			f.cycle = append(append([]string(nil), f.path[idx:]...), nbr)
		}
		if f.cycle != nil {
			return nil
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil
}

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
