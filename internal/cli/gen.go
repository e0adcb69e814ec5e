package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ancestry/builder"
	"github.com/katalvlaran/ancestry/graphfile"
)

// genParams collects the gen command flags.
type genParams struct {
	shape  string
	n      int
	depth  int
	layers int
	width  int
	p      float64
	seed   int64
	prefix string
	output string
}

func (c *CLI) genCommand() *cobra.Command {
	var gp genParams

	cmd := &cobra.Command{
		Use:   "gen --shape SHAPE [-o FILE]",
		Short: "Generate a graph document",
		Long: `Generate a graph document for experiments and benchmarks.

Shapes:
  path     0 → 1 → … → n-1               (--n)
  cycle    path closed back to 0         (--n)
  star     Center → 0..n-2               (--n)
  tree     complete binary tree, root 1  (--depth)
  layered  fully linked layers           (--layers, --width)
  dag      random DAG, i → j for i < j   (--n, --p, --seed)

The document is YAML on stdout, or YAML/TOML by the -o extension.`,
		Example: "  ancestry gen --shape dag --n 20 --p 0.2 --seed 7 -o random.toml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idFn := builder.IDFn(builder.DefaultIDFn)
			if gp.prefix != "" {
				idFn = builder.SymbolNumberIDFn(gp.prefix)
			}
			cons, root, err := gp.constructor(idFn)
			if err != nil {
				return err
			}
			opts := []builder.BuilderOption{builder.WithIDScheme(idFn), builder.WithSeed(gp.seed)}
			g, err := builder.BuildGraph(nil, opts, cons)
			if err != nil {
				return err
			}
			doc := graphfile.FromGraph(g, gp.shape, root)
			c.Logger.Debug("generated", "shape", gp.shape, "vertices", g.VertexCount(), "edges", g.EdgeCount())

			format := graphfile.YAML
			if gp.output != "" {
				if format, err = graphfile.FormatOf(gp.output); err != nil {
					return err
				}
			}
			var buf bytes.Buffer
			if err := doc.Encode(&buf, format); err != nil {
				return err
			}
			if gp.output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())

				return err
			}
			if err := os.WriteFile(gp.output, buf.Bytes(), 0o644); err != nil {
				return err
			}
			c.Logger.Info("Wrote " + gp.output)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&gp.shape, "shape", "dag", "path, cycle, star, tree, layered or dag")
	f.IntVar(&gp.n, "n", 10, "vertex count (path, cycle, star, dag)")
	f.IntVar(&gp.depth, "depth", 4, "tree depth")
	f.IntVar(&gp.layers, "layers", 4, "layer count (layered)")
	f.IntVar(&gp.width, "width", 3, "layer width (layered)")
	f.Float64Var(&gp.p, "p", 0.2, "edge probability (dag)")
	f.Int64Var(&gp.seed, "seed", 1, "random seed (dag)")
	f.StringVar(&gp.prefix, "prefix", "", "vertex ID prefix, e.g. v gives v0, v1, ...")
	f.StringVarP(&gp.output, "output", "o", "", "output file (.yaml, .yml or .toml); stdout when empty")

	return cmd
}

// constructor maps the shape flag to a builder constructor and the root the
// document should carry, if the shape has one.
func (gp genParams) constructor(idFn builder.IDFn) (builder.Constructor, string, error) {
	switch gp.shape {
	case "path":
		return builder.Path(gp.n), idFn(0), nil
	case "cycle":
		return builder.Cycle(gp.n), "", nil
	case "star":
		return builder.Star(gp.n), builder.Center, nil
	case "tree":
		return builder.BinaryTree(gp.depth), idFn(1), nil
	case "layered":
		return builder.Layered(gp.layers, gp.width), "", nil
	case "dag":
		return builder.RandomDAG(gp.n, gp.p), "", nil
	default:
		return nil, "", fmt.Errorf("unknown shape %q", gp.shape)
	}
}
