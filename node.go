package rbt

import (
	"fmt"
	"strings"
)

// BinarySearchTree is a plain binary search tree over values ordered by a
// CompareFunc. It stores neither nil values nor duplicates and never
// rebalances itself; RedBlackTree builds on it.
type BinarySearchTree[T any] struct {
	root    *node[T]
	size    int
	compare CompareFunc[T]
}

// NewBinarySearchTree returns an empty tree ordered by compare.
func NewBinarySearchTree[T any](compare CompareFunc[T]) *BinarySearchTree[T] {
	return &BinarySearchTree[T]{compare: compare}
}

func (n *node[T]) isRightChild() bool {
	return n.up != nil && n.up.down[right] == n
}

// Insert adds data in a leaf position. It reports false when an equal value
// is already stored, in which case the tree is left untouched.
func (t *BinarySearchTree[T]) Insert(data T) (bool, error) {
	if isNil(data) {
		return false, ErrNullValue
	}
	return t.insertRaw(&node[T]{data: data}), nil
}

func (t *BinarySearchTree[T]) insertRaw(newNode *node[T]) bool {
	if t.root == nil {
		t.root = newNode
		t.size++
		return true
	}

	curr := t.root
	for {
		cmp := t.compare(newNode.data, curr.data)
		if cmp == 0 {
			return false
		}

		dir := left
		if cmp > 0 {
			dir = right
		}
		if curr.down[dir] == nil {
			curr.down[dir] = newNode
			newNode.up = curr
			t.size++
			return true
		}
		curr = curr.down[dir]
	}
}

func (t *BinarySearchTree[T]) find(data T) *node[T] {
	curr := t.root
	for curr != nil {
		cmp := t.compare(data, curr.data)
		switch {
		case cmp == 0:
			return curr
		case cmp < 0:
			curr = curr.down[left]
		default:
			curr = curr.down[right]
		}
	}
	return nil
}

// rotate swaps the positions of child and its direct parent. A left child
// produces a right rotation, a right child a left rotation. The in-order
// sequence of the tree is unchanged.
//
//	      P            C
//	     / \          / \
//	    C   c   =>   a   P
//	   / \              / \
//	  a   b            b   c
func (t *BinarySearchTree[T]) rotate(child, parent *node[T]) error {
	if child == nil || parent == nil || child.up != parent {
		return ErrInvalidRotation
	}

	var dir int
	switch child {
	case parent.down[left]:
		dir = left
	case parent.down[right]:
		dir = right
	default:
		return ErrInvalidRotation
	}
	other := 1 - dir
	grandparent := parent.up

	// inner subtree of child moves across to parent
	parent.down[dir] = child.down[other]
	if child.down[other] != nil {
		child.down[other].up = parent
	}
	child.down[other] = parent
	parent.up = child

	child.up = grandparent
	switch {
	case grandparent == nil:
		t.root = child
	case grandparent.down[left] == parent:
		grandparent.down[left] = child
	default:
		grandparent.down[right] = child
	}
	return nil
}

// Contains reports whether a value equal to data is stored.
func (t *BinarySearchTree[T]) Contains(data T) bool {
	if isNil(data) {
		return false
	}
	return t.find(data) != nil
}

// Size returns the number of nodes.
func (t *BinarySearchTree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *BinarySearchTree[T]) IsEmpty() bool {
	return t.Size() == 0
}

// Clear drops every node.
func (t *BinarySearchTree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// inOrder visits nodes in ascending order until visit returns false.
func (t *BinarySearchTree[T]) inOrder(visit func(n *node[T]) bool) {
	stack := make([]*node[T], 0)
	curr := t.root
	for len(stack) > 0 || curr != nil {
		if curr != nil {
			stack = append(stack, curr)
			curr = curr.down[left]
			continue
		}
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(curr) {
			return
		}
		curr = curr.down[right]
	}
}

func (t *BinarySearchTree[T]) levelOrder(visit func(n *node[T]) bool) {
	if t.root == nil {
		return
	}
	queue := []*node[T]{t.root}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if !visit(next) {
			return
		}
		for _, child := range next.down {
			if child != nil {
				queue = append(queue, child)
			}
		}
	}
}

// InOrderString renders the values in ascending order, e.g. "[ 1, 2, 3 ]".
func (t *BinarySearchTree[T]) InOrderString() string {
	return render(t.inOrder)
}

// LevelOrderString renders the values breadth first from the root.
func (t *BinarySearchTree[T]) LevelOrderString() string {
	return render(t.levelOrder)
}

func (t *BinarySearchTree[T]) String() string {
	return "level order: " + t.LevelOrderString() + "\nin order: " + t.InOrderString()
}

func render[T any](walk func(visit func(n *node[T]) bool)) string {
	values := make([]string, 0)
	walk(func(n *node[T]) bool {
		values = append(values, fmt.Sprint(n.data))
		return true
	})
	if len(values) == 0 {
		return "[ ]"
	}
	return "[ " + strings.Join(values, ", ") + " ]"
}
