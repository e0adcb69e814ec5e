// Package dfs defines the graph contract, visitation states, options and
// sentinel errors shared by topological sorting and cycle detection.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to TopologicalSort
	// or DetectCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Graph is the read-only contract needed to order or scan a whole graph:
// enumeration of every vertex plus forward adjacency. *core.Graph satisfies it.
//
// Vertices and NeighborIDs should return deterministic (e.g. sorted) slices;
// the produced order is only as reproducible as they are.
type Graph interface {
	Vertices() []string
	NeighborIDs(id string) ([]string, error)
}

// TopoOption configures optional behavior for TopologicalSort and DetectCycle.
type TopoOption func(*topoOptions)

// topoOptions holds settings for a whole-graph traversal, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
