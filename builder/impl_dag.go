// SPDX-License-Identifier: MIT
// Package: ancestry/builder
//
// impl_dag.go - Layered(layers, width) and RandomDAG(n, p).
//
// Both shapes only emit edges from a lower vertex index to a higher one, so
// they are acyclic for any ID scheme.
//
// Layered:
//   - layers ≥ 1, width ≥ 1; vertex index = layer*width + column.
//   - Every vertex of layer k points to every vertex of layer k+1,
//     emitted layer by layer, source column then target column ascending.
//
// RandomDAG:
//   - n ≥ 1, 0 ≤ p ≤ 1; RNG required when 0 < p < 1.
//   - For each i < j (i asc, j asc) include i → j with probability p.
//   - Deterministic for a fixed seed because the trial order is fixed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ancestry/core"
)

const (
	methodLayered   = "Layered"
	methodRandomDAG = "RandomDAG"
	probMin         = 0.0
	probMax         = 1.0
)

// Layered returns a Constructor for a fully connected layered DAG.
func Layered(layers, width int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if layers < 1 || width < 1 {
			return fmt.Errorf("%s: layers=%d width=%d, both must be ≥ 1: %w",
				methodLayered, layers, width, ErrTooFewVertices)
		}
		if err := addVertices(methodLayered, g, cfg, layers*width); err != nil {
			return err
		}
		for l := 0; l+1 < layers; l++ {
			for i := 0; i < width; i++ {
				u := cfg.idFn(l*width + i)
				for j := 0; j < width; j++ {
					if err := addEdge(methodLayered, g, u, cfg.idFn((l+1)*width+j)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomDAG returns a Constructor sampling a DAG over n vertices where each
// forward pair i < j is linked with probability p.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomDAG, n, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDAG, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomDAG, ErrNeedRandSource)
		}
		if err := addVertices(methodRandomDAG, g, cfg, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == probMax:
					keep = true
				case p == probMin:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(methodRandomDAG, g, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
