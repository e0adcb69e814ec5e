// Package bst implements an unbalanced binary search tree over any ordered
// value type.
//
// Insertion places a value in the left subtree when it is less than or equal
// to the current node and in the right subtree otherwise, so duplicates are
// kept as distinct nodes. There is no rebalancing and no deletion: inserting
// an ascending sequence yields a right-leaning chain, which is valid input.
//
// A *Node is the identity of a tree position. Two nodes may hold equal
// values, and the lca package reports nodes rather than values for that
// reason.
//
// Complexity:
//
//   - Insert, Find:  O(h) where h is the tree height (O(n) worst case)
//   - Walk, Height:  O(n)
//   - String:        O(n) output lines
package bst
