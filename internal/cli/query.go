package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ancestry/graphfile"
	"github.com/katalvlaran/ancestry/lca"
)

// errNoRoot is returned by the graph command when neither --root nor the
// document names a root.
var errNoRoot = errors.New("no root: pass --root or set root in the document")

// resolver answers one query.
type resolver func(a, b string) (string, error)

func (c *CLI) graphCommand() *cobra.Command {
	var (
		file   string
		root   string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "graph -f FILE [A B]",
		Short: "Lowest common ancestor in a rooted directed graph",
		Long: `Load a graph document and resolve A and B against an explicit root.
Without A and B every query listed in the document is resolved.

A query is rejected when a target can reach the root back. With --strict any
directed cycle in the graph rejects every query.`,
		Example: "  ancestry graph -f family.yaml --root root 6 5",
		Args:    cobra.MatchAll(cobra.RangeArgs(0, 2), notOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := c.loadGraph(file)
			if err != nil {
				return err
			}
			if root == "" {
				root = doc.Root
			}
			if root == "" {
				return errNoRoot
			}
			qs, err := pairs(args, doc)
			if err != nil {
				return err
			}

			var extra []lca.Option
			if strict {
				extra = append(extra, lca.WithStrictAcyclic())
			}
			opts := c.queryOptions(cmd, extra...)

			return c.runQueries(cmd, qs, func(a, b string) (string, error) {
				return lca.FindGraph(g, root, a, b, opts...)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "graph document (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&root, "root", "", "root vertex (defaults to the document root)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject graphs with any directed cycle")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (c *CLI) dagCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "dag -f FILE [A B]",
		Short: "Lowest common ancestor in a rootless DAG",
		Long: `Load a graph document and resolve A and B without a root: the most
specific vertex, in topological order, that reaches both. Without A and B
every query listed in the document is resolved.`,
		Example: "  ancestry dag -f pipeline.toml 7 5",
		Args:    cobra.MatchAll(cobra.RangeArgs(0, 2), notOneArg),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := c.loadGraph(file)
			if err != nil {
				return err
			}
			qs, err := pairs(args, doc)
			if err != nil {
				return err
			}
			opts := c.queryOptions(cmd)

			return c.runQueries(cmd, qs, func(a, b string) (string, error) {
				return lca.FindDAG(g, a, b, opts...)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "graph document (.yaml, .yml or .toml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// runQueries prints one line per query. A single failing query is returned
// as its own error; with several, failures are printed inline and counted.
func (c *CLI) runQueries(cmd *cobra.Command, qs []graphfile.Query, resolve resolver) error {
	out := cmd.OutOrStdout()
	if len(qs) == 1 {
		id, err := resolve(qs[0].A, qs[0].B)
		if err != nil {
			return noAncestor(err)
		}
		fmt.Fprintln(out, id)

		return nil
	}

	failed := 0
	for _, q := range qs {
		id, err := resolve(q.A, q.B)
		if err != nil {
			failed++
			fmt.Fprintf(out, "lca(%s, %s): %v\n", q.A, q.B, noAncestor(err))
			continue
		}
		fmt.Fprintf(out, "lca(%s, %s) = %s\n", q.A, q.B, id)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d queries have no common ancestor", failed, len(qs))
	}

	return nil
}

// notOneArg rejects a lone vertex: queries take a pair or nothing.
func notOneArg(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("%s needs two vertices, got %q", cmd.Name(), args[0])
	}

	return nil
}
