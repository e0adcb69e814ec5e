// Package bfs provides tunable options, error definitions, and the Path type
// for breadth-first path finding.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNilCallback is returned when Search receives a nil expander or predicate.
	ErrNilCallback = errors.New("bfs: expand and match callbacks are required")

	// ErrNeighbors is returned when expanding a node fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for every dequeued node, before it is tested
	// against the predicate. Receives the node and its depth from the start.
	OnVisit func(node any, depth int)

	// MaxDepth, if > 0, stops expanding nodes at this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(any, int) {},
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every dequeued node.
func WithOnVisit(fn func(node any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search to paths of at most d edges.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Path is an ordered sequence of vertex IDs from a start vertex to an end
// vertex; consecutive IDs are joined by an edge. Its length is a node count.
type Path []string

// First returns the start vertex, or "" for an empty path.
func (p Path) First() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Last returns the end vertex, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Contains reports whether id lies on the path.
func (p Path) Contains(id string) bool {
	for _, x := range p {
		if x == id {
			return true
		}
	}
	return false
}

// Edges returns the number of edges on the path.
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
