// Package bfs finds shortest (fewest-edge) paths by breadth-first search.
//
// Search is generic over the node type so the same walker serves graph
// vertices (string IDs) and binary-tree nodes (pointers). FindPath adapts it
// to any graph exposing HasVertex and NeighborIDs.
package bfs

import (
	"context"
	"fmt"
)

// Graph is the read-only traversal contract FindPath needs.
// *core.Graph satisfies it.
type Graph interface {
	HasVertex(id string) bool
	NeighborIDs(id string) ([]string, error)
}

// Expander returns the forward neighbors of a node.
type Expander[N comparable] func(node N) ([]N, error)

// queueItem pairs a node with its depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	expand  Expander[N]
	match   func(N) bool
	opts    Options
	ctx     context.Context
	queue   []queueItem[N]
	visited map[N]struct{}
	parent  map[N]N
}

// Search runs breadth-first search from start, following expand, and stops
// as soon as a dequeued node satisfies match. start itself is tested first.
//
// Returns the path start..match inclusive and true, or (nil, false, nil)
// when no reachable node matches. Each node is enqueued at most once, so the
// search terminates on cyclic inputs and the returned path has the fewest
// edges among all matching nodes.
//
// Errors: ErrNilCallback, ErrOptionViolation, ErrNeighbors (wrapping the
// expander's error), or the context error on cancellation.
func Search[N comparable](start N, expand Expander[N], match func(N) bool, opts ...Option) ([]N, bool, error) {
	if expand == nil || match == nil {
		return nil, false, ErrNilCallback
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, false, o.err
	}

	w := &walker[N]{
		expand:  expand,
		match:   match,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[N]struct{}),
		parent:  make(map[N]N),
	}
	w.enqueue(start, 0)

	return w.loop()
}

// FindPath returns the shortest path in g from start to the first vertex
// satisfying match. A missing path is reported as ok == false, not as an error.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, plus those of Search.
func FindPath(g Graph, start string, match func(id string) bool, opts ...Option) (Path, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, false, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	path, ok, err := Search[string](start, g.NeighborIDs, match, opts...)
	if err != nil || !ok {
		return nil, false, err
	}

	return Path(path), true, nil
}

// Between returns the shortest path from -> to in g.
func Between(g Graph, from, to string, opts ...Option) (Path, bool, error) {
	return FindPath(g, from, func(id string) bool { return id == to }, opts...)
}

// enqueue marks node visited and appends it to the queue.
func (w *walker[N]) enqueue(node N, depth int) {
	w.visited[node] = struct{}{}
	w.queue = append(w.queue, queueItem[N]{node: node, depth: depth})
}

// loop processes the queue until a match, exhaustion, error, or cancellation.
func (w *walker[N]) loop() ([]N, bool, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, false, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnVisit(item.node, item.depth)

		if w.match(item.node) {
			return w.pathTo(item.node), true, nil
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}

		next, err := w.expand(item.node)
		if err != nil {
			return nil, false, fmt.Errorf("%w: failed to expand %v: %v", ErrNeighbors, item.node, err)
		}
		for _, nbr := range next {
			if _, seen := w.visited[nbr]; seen {
				continue
			}
			w.parent[nbr] = item.node
			w.enqueue(nbr, item.depth+1)
		}
	}

	return nil, false, nil
}

// pathTo rebuilds the start → dest path from parent links.
func (w *walker[N]) pathTo(dest N) []N {
	path := []N{dest}
	for cur := dest; ; {
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
