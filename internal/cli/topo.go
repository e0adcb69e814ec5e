package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ancestry/dfs"
)

func (c *CLI) topoCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "topo -f FILE",
		Short: "Print a topological order of a graph document",
		Long: `Print the vertices of a graph document in topological order, one
ancestor-most vertex first. A cyclic graph is reported with one of its cycles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := c.loadGraph(file)
			if err != nil {
				return err
			}

			order, err := dfs.TopologicalSort(g, dfs.WithCancelContext(cmd.Context()))
			if errors.Is(err, dfs.ErrCycleDetected) {
				cycle, cerr := dfs.DetectCycle(g, dfs.WithCancelContext(cmd.Context()))
				if cerr != nil {
					return cerr
				}

				return fmt.Errorf("graph is cyclic: %s", strings.Join(cycle, " → "))
			}
			if err != nil {
				return err
			}
			c.Logger.Debug("sorted", "vertices", len(order), "sources", g.Sources())
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(order, " "))

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "graph document (.yaml, .yml or .toml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
