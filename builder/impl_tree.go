// SPDX-License-Identifier: MIT
// Package: ancestry/builder
//
// impl_tree.go - BinaryTree(depth): complete binary tree in heap numbering.
//
// Contract:
//   - depth ≥ 1 (else ErrTooFewVertices); depth 1 is the lone root.
//   - Vertices cfg.idFn(1..2^depth-1); index 1 is the root, i has children
//     2i and 2i+1. Index 0 is unused so the numbering matches the heap rule.
//   - Edges emitted parent by parent, left child first.
//
// Complexity: O(2^depth) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ancestry/core"
)

const (
	methodBinaryTree = "BinaryTree"
	minTreeDepth     = 1
	maxTreeDepth     = 24
)

// BinaryTree returns a Constructor for a complete binary tree of the given depth.
func BinaryTree(depth int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if depth < minTreeDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodBinaryTree, depth, minTreeDepth, ErrTooFewVertices)
		}
		if depth > maxTreeDepth {
			return fmt.Errorf("%s: depth=%d > max=%d: %w", methodBinaryTree, depth, maxTreeDepth, ErrConstructFailed)
		}

		last := 1<<depth - 1
		for i := 1; i <= last; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodBinaryTree, id, err)
			}
		}
		for i := 1; 2*i+1 <= last; i++ {
			p := cfg.idFn(i)
			if err := addEdge(methodBinaryTree, g, p, cfg.idFn(2*i)); err != nil {
				return err
			}
			if err := addEdge(methodBinaryTree, g, p, cfg.idFn(2*i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// BinaryTreeLeaf returns the index of the last leaf of BinaryTree(depth),
// the vertex farthest from the root in heap order.
func BinaryTreeLeaf(depth int) int {
	return 1<<depth - 1
}
