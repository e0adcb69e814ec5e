// SPDX-License-Identifier: MIT
// Package: ancestry/builder
//
// impl_star.go - Star(n): a fixed "Center" pointing at n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds "Center" first, then leaves cfg.idFn(0..n-2).
//   - Emits Center → leaf in ascending leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ancestry/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// Center is the fixed ID of the hub vertex in Star.
	Center = "Center"
)

// Star returns a Constructor that builds a one-level tree rooted at Center.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(Center); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, Center, err)
		}
		if err := addVertices(methodStar, g, cfg, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodStar, g, Center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
