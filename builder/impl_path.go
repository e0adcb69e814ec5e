// SPDX-License-Identifier: MIT
// Package: ancestry/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; Cycle: n ≥ 2 (n == 2 is the two-vertex cycle 0 → 1 → 0).
//   - Vertices via cfg.idFn in ascending index order.
//   - Edges (i-1) → i for i = 1..n-1; Cycle adds n-1 → 0 last.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ancestry/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 2
)

// Path returns a Constructor that builds the chain 0 → 1 → … → n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(methodPath, g, cfg, n)
	}
}

// Cycle returns a Constructor that builds Path(n) closed by n-1 → 0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := chain(methodCycle, g, cfg, n); err != nil {
			return err
		}

		return addEdge(methodCycle, g, cfg.idFn(n-1), cfg.idFn(0))
	}
}

func chain(method string, g *core.Graph, cfg builderConfig, n int) error {
	if err := addVertices(method, g, cfg, n); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := addEdge(method, g, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}
