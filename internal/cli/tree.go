package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ancestry/bst"
	"github.com/katalvlaran/ancestry/lca"
)

func (c *CLI) treeCommand() *cobra.Command {
	var (
		values []int
		dump   bool
	)

	cmd := &cobra.Command{
		Use:   "tree A B",
		Short: "Lowest common ancestor of two values in a binary search tree",
		Long: `Build a binary search tree by inserting --values in order (smaller or
equal values go left) and print the lowest common ancestor of A and B.`,
		Example: "  ancestry tree --values 3,1,2,4,5,6 4 6",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v1, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			v2, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			tr := bst.New(values...)
			c.Logger.Debug("tree built", "size", tr.Len(), "height", tr.Height())
			if dump {
				fmt.Fprintln(cmd.OutOrStdout(), tr)
			}

			n, err := lca.FindTree(tr, v1, v2, c.queryOptions(cmd)...)
			if err != nil {
				return noAncestor(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.Value)

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&values, "values", nil, "values to insert, in order")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the tree before answering")

	return cmd
}
