// Package cli implements the ancestry command line: LCA queries over binary
// search trees, rooted graphs and DAGs read from graph documents, plus
// topological ordering and Graphviz rendering of those documents.
//
// All commands support --verbose (-v) for debug logging, which includes the
// reason a query has no common ancestor.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ancestry/core"
	"github.com/katalvlaran/ancestry/graphfile"
	"github.com/katalvlaran/ancestry/lca"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version is set at build time with -ldflags.
var Version = "dev"

// errNoPairs is returned when a query command gets neither arguments nor
// document queries.
var errNoPairs = errors.New("no vertex pair given and the document has no queries")

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "ancestry",
		Short:         "ancestry finds lowest common ancestors in trees and graphs",
		Long:          `ancestry resolves lowest common ancestor queries over binary search trees, rooted directed graphs and rootless DAGs loaded from YAML or TOML documents.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.dagCommand())
	root.AddCommand(c.topoCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.genCommand())

	return root
}

// noAncestor turns an lca failure into the user-facing error.
func noAncestor(err error) error {
	return fmt.Errorf("no common ancestor (%w)", err)
}

// loadGraph reads a graph document and builds it.
func (c *CLI) loadGraph(path string, opts ...core.GraphOption) (*graphfile.Document, *core.Graph, error) {
	p := newProgress(c.Logger)
	doc, err := graphfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Build(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	p.done(fmt.Sprintf("Loaded %s: %d vertices, %d edges", path, g.VertexCount(), g.EdgeCount()))

	return doc, g, nil
}

// pairs returns the query pairs: the two positional arguments if given,
// otherwise every query of the document.
func pairs(args []string, doc *graphfile.Document) ([]graphfile.Query, error) {
	if len(args) == 2 {
		return []graphfile.Query{{A: args[0], B: args[1]}}, nil
	}
	if len(doc.Queries) == 0 {
		return nil, errNoPairs
	}

	return doc.Queries, nil
}

// splitPair parses "A,B".
func splitPair(s string) (graphfile.Query, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok || a == "" || b == "" {
		return graphfile.Query{}, fmt.Errorf("invalid pair %q, want A,B", s)
	}

	return graphfile.Query{A: a, B: b}, nil
}

// queryOptions carries the command context and logger into lca.
func (c *CLI) queryOptions(cmd *cobra.Command, extra ...lca.Option) []lca.Option {
	return append([]lca.Option{lca.WithContext(cmd.Context()), lca.WithLogger(c.Logger)}, extra...)
}
