package bst

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrNilNode is returned by Children when asked to expand a nil node.
var ErrNilNode = errors.New("bst: nil node")

// Node is a single tree position. Left holds values <= Value, Right holds
// values > Value.
type Node[T cmp.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree owns an optional root. The zero value is an empty tree ready to use.
type Tree[T cmp.Ordered] struct {
	root *Node[T]
	size int
}

// New builds a tree by inserting values in order.
func New[T cmp.Ordered](values ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Insert attaches value as a new leaf below the first empty slot met while
// descending from the root.
func (t *Tree[T]) Insert(value T) *Node[T] {
	leaf := &Node[T]{Value: value}
	t.size++
	if t.root == nil {
		t.root = leaf

		return leaf
	}

	cur := t.root
	for {
		if value <= cur.Value {
			if cur.Left == nil {
				cur.Left = leaf

				return leaf
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = leaf

				return leaf
			}
			cur = cur.Right
		}
	}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Len returns the number of inserted values.
func (t *Tree[T]) Len() int { return t.size }

// Empty reports whether the tree has no root.
func (t *Tree[T]) Empty() bool { return t.root == nil }

// Find returns the shallowest node holding value, or nil.
// Because equal values go left, the shallowest match is the first one met
// on the search path.
func (t *Tree[T]) Find(value T) *Node[T] {
	for cur := t.root; cur != nil; {
		switch {
		case value == cur.Value:
			return cur
		case value < cur.Value:
			cur = cur.Left
		default:
			cur = cur.Right
		}
	}

	return nil
}

// Children returns the non-nil children of n, left first. Its signature
// matches bfs.Expander so a tree can be searched breadth-first directly.
func (t *Tree[T]) Children(n *Node[T]) ([]*Node[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	out := make([]*Node[T], 0, 2)
	if n.Left != nil {
		out = append(out, n.Left)
	}
	if n.Right != nil {
		out = append(out, n.Right)
	}

	return out, nil
}

// Walk visits nodes in order (left, node, right). Returning false from fn
// stops the walk.
func (t *Tree[T]) Walk(fn func(n *Node[T]) bool) {
	// explicit stack: skewed trees can be as deep as Len()
	var stack []*Node[T]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			return
		}
		cur = cur.Right
	}
}

// Values returns all values in ascending order.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.size)
	t.Walk(func(n *Node[T]) bool {
		out = append(out, n.Value)

		return true
	})

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path;
// an empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	height := 0
	level := []*Node[T]{t.root}
	for len(level) > 0 {
		height++
		var next []*Node[T]
		for _, n := range level {
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		level = next
	}

	return height
}

// String renders the tree one node per line, indented by depth, with an
// L/R marker for the slot each child occupies:
//
//	3
//	  L: 1
//	    R: 2
//	  R: 4
func (t *Tree[T]) String() string {
	if t.root == nil {
		return "<empty>"
	}
	var sb strings.Builder
	var dump func(n *Node[T], depth int, slot string)
	dump = func(n *Node[T], depth int, slot string) {
		if n == nil {
			return
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(slot)
		fmt.Fprintf(&sb, "%v\n", n.Value)
		dump(n.Left, depth+1, "L: ")
		dump(n.Right, depth+1, "R: ")
	}
	dump(t.root, 0, "")

	return strings.TrimSuffix(sb.String(), "\n")
}
