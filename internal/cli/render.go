package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ancestry/core"
	"github.com/katalvlaran/ancestry/graphfile"
	"github.com/katalvlaran/ancestry/lca"
	"github.com/katalvlaran/ancestry/render"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		file   string
		pair   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render -f FILE [--pair A,B] [-o OUT]",
		Short: "Draw a graph document with Graphviz",
		Long: `Draw a graph document as DOT or SVG. With --pair the two vertices and
their lowest common ancestor are highlighted, using the document root when it
has one and the rootless DAG rule otherwise.

The output format follows the -o extension: .svg renders through Graphviz,
anything else (or stdout) is DOT source.`,
		Example: "  ancestry render -f family.yaml --pair 6,5 -o family.svg",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := c.loadGraph(file)
			if err != nil {
				return err
			}

			var hl render.Highlight
			if pair != "" {
				if hl, err = c.highlight(cmd, doc, g, pair); err != nil {
					return err
				}
			}
			dot := render.ToDOT(g, hl)

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), dot)

				return err
			}

			data := []byte(dot)
			if strings.EqualFold(filepath.Ext(output), ".svg") {
				p := newProgress(c.Logger)
				if data, err = render.RenderSVG(cmd.Context(), dot); err != nil {
					return err
				}
				p.done("Rendered SVG")
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			c.Logger.Info("Wrote " + output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "graph document (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&pair, "pair", "", "highlight the LCA of A,B")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.svg or .dot); stdout when empty")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (c *CLI) highlight(cmd *cobra.Command, doc *graphfile.Document, g *core.Graph, pair string) (render.Highlight, error) {
	q, err := splitPair(pair)
	if err != nil {
		return render.Highlight{}, err
	}

	opts := c.queryOptions(cmd)
	var ancestor string
	if doc.Root != "" {
		ancestor, err = lca.FindGraph(g, doc.Root, q.A, q.B, opts...)
	} else {
		ancestor, err = lca.FindDAG(g, q.A, q.B, opts...)
	}
	if err != nil {
		return render.Highlight{}, noAncestor(err)
	}

	return render.Pair(g, q.A, q.B, ancestor)
}
