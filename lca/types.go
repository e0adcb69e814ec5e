package lca

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/ancestry/bfs"
)

// Sentinel errors. Find* wrap them with the offending IDs.
var (
	// ErrTreeNil is returned when a nil tree is queried.
	ErrTreeNil = errors.New("lca: tree is nil")

	// ErrGraphNil is returned when a nil graph is queried.
	ErrGraphNil = errors.New("lca: graph is nil")

	// ErrNodeNotFound means a queried value or vertex is not in the structure.
	ErrNodeNotFound = errors.New("lca: node not found")

	// ErrDisconnected means no node is an ancestor of both targets.
	ErrDisconnected = errors.New("lca: no common ancestor")

	// ErrMisRooted means a target has a forward path back to the supplied root.
	ErrMisRooted = errors.New("lca: root is reachable from a target")

	// ErrCyclic means the graph contains a directed cycle.
	ErrCyclic = errors.New("lca: graph contains a cycle")
)

// RootedGraph is what FindGraph reads: existence checks and forward
// adjacency, plus full enumeration for WithStrictAcyclic.
// *core.Graph satisfies it.
type RootedGraph interface {
	bfs.Graph
	Vertices() []string
}

// DAGGraph is what FindDAG reads. *core.Graph satisfies it.
type DAGGraph interface {
	bfs.Graph
	Vertices() []string
}

// Option configures a query.
type Option func(*Options)

// Options holds query settings.
type Options struct {
	// Ctx cancels long searches; checked once per visited vertex.
	Ctx context.Context

	// Logger receives debug records explaining rejected queries.
	Logger *log.Logger

	// StrictAcyclic makes FindGraph reject any cyclic graph up front,
	// not only cycles that pass through the root and a target.
	StrictAcyclic bool
}

var discard = log.NewWithOptions(io.Discard, log.Options{})

// DefaultOptions returns a background context and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: discard,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrictAcyclic enables a whole-graph cycle check in FindGraph.
func WithStrictAcyclic() Option {
	return func(o *Options) {
		o.StrictAcyclic = true
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// commonPrefix returns the last element on which p1 and p2 agree, scanning
// from index 0 and stopping at the first mismatch. n is the number of
// agreeing elements; n == 0 means the paths disagree at the start.
func commonPrefix[N comparable](p1, p2 []N) (last N, n int) {
	limit := min(len(p1), len(p2))
	for n < limit && p1[n] == p2[n] {
		last = p1[n]
		n++
	}

	return last, n
}
