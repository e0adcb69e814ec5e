package builder

import (
	"fmt"

	"github.com/katalvlaran/ancestry/core"
)

// addVertices inserts cfg.idFn(0..n-1) in ascending order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge inserts u→v, wrapping core errors with the method name.
func addEdge(method string, g *core.Graph, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}
